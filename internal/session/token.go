package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a freshly issued session lives.
const DefaultTTL = 7 * 24 * time.Hour

// Session is the decoded form of a session token. It is rebuilt from the
// cookie on every request; nothing is stored server-side.
type Session struct {
	Username  string
	ExpiresAt time.Time
}

// Codec encodes and decodes self-contained session tokens. Tokens are
// HS256-signed so a tampered or forged cookie never decodes.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Encode issues a token for username expiring ttl from now.
func (c *Codec) Encode(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode returns the session carried by token, or nil if the token is
// malformed, carries a bad signature, or has expired. It never returns an
// error: a token that does not decode is simply not a session.
func (c *Codec) Decode(token string) *Session {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil
	}
	return &Session{
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}
