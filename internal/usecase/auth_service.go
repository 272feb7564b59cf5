package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/school-tournament/internal/domain/user"
	"github.com/riskibarqy/school-tournament/internal/platform/id"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

// AuthService issues sessions for a locally selected role. Passwords are
// required but not checked against any store.
type AuthService struct {
	sessions user.SessionRepository
	tokens   id.TokenGenerator
	clock    clockwork.Clock
	logger   *logging.Logger
}

func NewAuthService(
	sessions user.SessionRepository,
	tokens id.TokenGenerator,
	clock clockwork.Clock,
	logger *logging.Logger,
) *AuthService {
	if tokens == nil {
		tokens = id.NewUUIDGenerator()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		sessions: sessions,
		tokens:   tokens,
		clock:    clock,
		logger:   logger.Named("auth"),
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string, role user.Role) (user.Session, error) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		return user.Session{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	case password == "":
		return user.Session{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	case !role.Valid():
		return user.Session{}, fmt.Errorf("%w: role must be admin or viewer", ErrInvalidInput)
	}

	session := user.Session{
		Token:     s.tokens.NewToken(),
		Username:  username,
		Role:      role,
		LoginTime: s.clock.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return user.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "username", username, "role", string(role))
	return session, nil
}

// Verify resolves a bearer token to its session.
func (s *AuthService) Verify(ctx context.Context, token string) (user.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Session{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	session, exists, err := s.sessions.Get(ctx, token)
	if err != nil {
		return user.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return user.Session{}, fmt.Errorf("%w: unknown session", ErrUnauthorized)
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, strings.TrimSpace(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
