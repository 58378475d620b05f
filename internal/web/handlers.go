package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"notewiki/internal/markdown"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleLoginForm(w, r)
	case http.MethodPost:
		s.handleLoginSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	returnURL := localReturnURL(r.URL.Query().Get("returnUrl"))
	if _, ok := CurrentSession(r.Context()); ok {
		http.Redirect(w, r, returnURL, http.StatusFound)
		return
	}
	data := ViewData{
		Title:           "Login",
		ContentTemplate: "login",
		ReturnURL:       returnURL,
	}
	s.views.RenderPage(w, data)
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, "malformed form submission")
		return
	}
	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	returnURL := localReturnURL(r.PostForm.Get("returnUrl"))

	if username == "" || password == "" {
		badRequest(w, "Username and password are required")
		return
	}
	if !s.creds.Validate(username, password) {
		unauthorized(w, "Invalid username or password")
		return
	}

	token, err := s.auth.codec.Encode(username, s.cfg.SessionTTL)
	if err != nil {
		slog.Error("encode session token", "err", err)
		internalError(w, "Failed to create session")
		return
	}
	// Self-check: a token we just issued must decode. If it does not,
	// the codec configuration is broken and the login cannot proceed.
	sess := s.auth.codec.Decode(token)
	if sess == nil {
		slog.Error("freshly encoded session token did not decode")
		internalError(w, "Failed to create session")
		return
	}

	s.auth.setCookie(w, token, sess.ExpiresAt)
	slog.Info("login", "username", sess.Username)
	http.Redirect(w, r, returnURL, http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.auth.clearCookie(w)
	http.Redirect(w, r, localReturnURL(r.URL.Query().Get("returnUrl")), http.StatusFound)
}

func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	relpath := strings.TrimPrefix(r.URL.Path, "/")
	note := s.fetcher.Fetch(r.Context(), relpath)

	rendered, err := markdown.Get(s.theme, false).Render([]byte(note.Content))
	if err != nil {
		slog.Error("render note", "relpath", relpath, "err", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	data := ViewData{
		Title:           note.Title,
		ContentTemplate: "note",
		NotePath:        relpath,
		NoteTitle:       note.Title,
		RenderedHTML:    template.HTML(rendered),
		Frontmatter:     note.Frontmatter,
	}
	if sess, ok := CurrentSession(r.Context()); ok {
		data.Username = sess.Username
	}
	s.views.RenderPage(w, data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	version := strings.TrimSpace(BuildVersion)
	if version == "" {
		version = "dev"
	}
	_, _ = w.Write([]byte("ok " + version + "\n"))
}

// localReturnURL keeps post-login redirects on this site. Anything that is
// not a plain absolute path falls back to the home page.
func localReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}
