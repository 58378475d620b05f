package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	ListenAddr    string
	NotesAPIURL   string
	AuthUsername  string
	AuthPassword  string
	SessionSecret string
	SessionTTL    time.Duration
	FetchTimeout  time.Duration
	Theme         string
	Dev           bool
}

func Load() Config {
	initEnvFile()

	cfg := Config{
		ListenAddr:    envOr("NOTES_LISTEN_ADDR", "127.0.0.1:8080"),
		NotesAPIURL:   envOr("NOTES_API_URL", "http://127.0.0.1:8000"),
		AuthUsername:  os.Getenv("AUTH_USERNAME"),
		AuthPassword:  os.Getenv("AUTH_PASSWORD"),
		SessionSecret: os.Getenv("NOTES_SESSION_SECRET"),
		Theme:         envOr("NOTES_THEME", "light"),
		Dev:           parseBool(os.Getenv("NOTES_DEV")),
	}

	cfg.SessionTTL = parseDurationOr("NOTES_SESSION_TTL", 7*24*time.Hour)
	cfg.FetchTimeout = parseDurationOr("NOTES_FETCH_TIMEOUT", 10*time.Second)
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
