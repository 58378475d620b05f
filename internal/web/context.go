package web

import (
	"context"

	"notewiki/internal/session"
)

type contextKey int

const sessionKey contextKey = iota

func withSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// CurrentSession returns the session decoded by the middleware, if any.
// A request carries at most one: either the cookie decoded or it did not.
func CurrentSession(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok && s != nil
}
