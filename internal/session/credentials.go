package session

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"notewiki/internal/auth"
)

// Fallback pair accepted in dev mode when no credentials are configured.
const (
	devUsername = "admin"
	devPassword = "password"
)

// Credentials validates a submitted username/password pair against the
// single configured pair. The configured password may be either a plain
// value or an argon2id PHC hash.
type Credentials struct {
	username string
	password string
	hash     *auth.Argon2idHash
	dev      bool
}

func NewCredentials(username, password string, dev bool) Credentials {
	c := Credentials{username: username, password: password, dev: dev}
	if strings.HasPrefix(password, auth.PHCPrefix) {
		parsed, err := auth.ParseArgon2idHash(password)
		if err != nil {
			slog.Warn("AUTH_PASSWORD looks like an argon2id hash but did not parse", "err", err)
		} else {
			c.hash = parsed
		}
	}
	return c
}

func (c Credentials) Validate(username, password string) bool {
	if c.username == "" && c.password == "" && c.dev {
		return username == devUsername && password == devPassword
	}
	if c.username == "" || c.password == "" {
		slog.Warn("AUTH_USERNAME or AUTH_PASSWORD not set, rejecting login")
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1
	var passOK bool
	if c.hash != nil {
		passOK = c.hash.Verify(password)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(c.password), []byte(password)) == 1
	}
	return userOK && passOK
}
