package httpapi

import (
	"context"

	"github.com/riskibarqy/school-tournament/internal/domain/user"
)

type contextKey string

const sessionContextKey contextKey = "auth_session"

func withSession(ctx context.Context, s user.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func sessionFromContext(ctx context.Context) (user.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(user.Session)
	return s, ok
}
