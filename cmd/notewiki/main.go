package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"notewiki/internal/config"
	"notewiki/internal/markdown"
	"notewiki/internal/web"
)

func main() {
	level := parseLogLevel(os.Getenv("NOTES_DEBUG_LEVEL"))
	pretty := strings.EqualFold(os.Getenv("NOTES_LOG_PRETTY"), "1") || strings.EqualFold(os.Getenv("NOTES_LOG_PRETTY"), "true")
	setupLogging(level, pretty)

	cfg := config.Load()
	version := strings.TrimSpace(web.BuildVersion)
	if version == "" {
		version = "dev"
	}
	slog.Info("startup", "build_version", version, "theme", cfg.Theme, "dev", cfg.Dev)

	if cfg.SessionSecret == "" {
		slog.Error("NOTES_SESSION_SECRET is required")
		os.Exit(1)
	}
	if (cfg.AuthUsername == "" || cfg.AuthPassword == "") && !cfg.Dev {
		slog.Warn("AUTH_USERNAME or AUTH_PASSWORD not set, logins will be rejected")
	}

	// Warm the renderer so the first request does not pay for pipeline
	// construction.
	markdown.Get(markdown.ParseTheme(cfg.Theme), false)

	srv, err := web.NewServer(cfg)
	if err != nil {
		slog.Error("server init", "err", err)
		os.Exit(1)
	}

	slog.Info("listening", "addr", cfg.ListenAddr, "notes_api", cfg.NotesAPIURL)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Handler()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func setupLogging(level slog.Leveler, pretty bool) {
	var console slog.Handler
	if pretty {
		console = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		console = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	if strings.TrimSpace(os.Getenv("DEV")) != "" {
		file, err := os.Create("dev.log")
		if err != nil {
			slog.Error("open log file", "path", "dev.log", "err", err)
		} else {
			_, _ = fmt.Fprintf(file, "=== notewiki dev log start %s ===\n", time.Now().Format(time.RFC3339))
			fileHandler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
			slog.SetDefault(slog.New(&teeHandler{handlers: []slog.Handler{console, fileHandler}}))
			return
		}
	}
	slog.SetDefault(slog.New(console))
}

func parseLogLevel(raw string) slog.Leveler {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}
	return level
}

type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range t.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		out = append(out, h.WithAttrs(attrs))
	}
	return &teeHandler{handlers: out}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		out = append(out, h.WithGroup(name))
	}
	return &teeHandler{handlers: out}
}
