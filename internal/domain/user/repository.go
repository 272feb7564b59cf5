package user

import "context"

// SessionRepository stores active sessions keyed by token.
type SessionRepository interface {
	Save(ctx context.Context, session Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}
