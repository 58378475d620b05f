package web

import (
	"net/http"
	"time"

	"notewiki/internal/session"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "simple-auth-session"

// SessionAuth resolves the session cookie on every request. A cookie that
// decodes populates the request context and is re-affirmed in the
// response; one that does not is actively cleared so a stale or tampered
// value does not linger.
type SessionAuth struct {
	codec *session.Codec
	dev   bool
}

func newSessionAuth(codec *session.Codec, dev bool) *SessionAuth {
	return &SessionAuth{codec: codec, dev: dev}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		s := a.codec.Decode(cookie.Value)
		if s == nil {
			a.clearCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		a.setCookie(w, cookie.Value, s.ExpiresAt)
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

func (a *SessionAuth) setCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   !a.dev,
		SameSite: http.SameSiteStrictMode,
	})
}

func (a *SessionAuth) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !a.dev,
		SameSite: http.SameSiteStrictMode,
	})
}
