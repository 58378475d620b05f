package web

import (
	"net/http"

	"notewiki/internal/config"
	"notewiki/internal/markdown"
	"notewiki/internal/notes"
	"notewiki/internal/session"
)

type Server struct {
	cfg     config.Config
	mux     *http.ServeMux
	views   *Templates
	fetcher *notes.Fetcher
	auth    *SessionAuth
	creds   session.Credentials
	theme   markdown.Theme
}

func NewServer(cfg config.Config) (*Server, error) {
	codec, err := session.NewCodec(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:     cfg,
		mux:     http.NewServeMux(),
		views:   MustParseTemplates(),
		fetcher: notes.NewFetcher(cfg.NotesAPIURL, cfg.FetchTimeout),
		auth:    newSessionAuth(codec, cfg.Dev),
		creds:   session.NewCredentials(cfg.AuthUsername, cfg.AuthPassword, cfg.Dev),
		theme:   markdown.ParseTheme(cfg.Theme),
	}
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return requestLog(s.auth.Middleware(s.mux))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.HandleFunc("/", s.handleNote)
}
