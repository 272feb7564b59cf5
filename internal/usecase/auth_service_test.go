package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/school-tournament/internal/domain/user"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
	usermock "github.com/riskibarqy/school-tournament/internal/mocks/domain/user"
	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

type fixedTokens struct{ token string }

func (g fixedTokens) NewToken() string { return g.token }

func TestAuthService_LoginVerifyLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewAuthService(memory.NewSessionRepository(), fixedTokens{token: "tok-1"}, clockwork.NewFakeClockAt(testNow), logging.NewNop())

	session, err := service.Login(ctx, " profe ", "secret", user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "profe", session.Username)
	assert.Equal(t, testNow, session.LoginTime)
	assert.True(t, session.IsAdmin())

	verified, err := service.Verify(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, session, verified)

	require.NoError(t, service.Logout(ctx, "tok-1"))
	_, err = service.Verify(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = service.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthService_LoginRequiresAllFields(t *testing.T) {
	t.Parallel()

	service := NewAuthService(memory.NewSessionRepository(), nil, nil, logging.NewNop())
	tests := []struct {
		name     string
		username string
		password string
		role     user.Role
	}{
		{name: "missing username", password: "x", role: user.RoleViewer},
		{name: "missing password", username: "ana", role: user.RoleViewer},
		{name: "unknown role", username: "ana", password: "x", role: "owner"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), tc.username, tc.password, tc.role)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAuthService_LoginSaveFailureUsingMockery(t *testing.T) {
	t.Parallel()

	sessions := usermock.NewSessionRepository(t)
	service := NewAuthService(sessions, fixedTokens{token: "tok-2"}, clockwork.NewFakeClockAt(testNow), logging.NewNop())

	sessions.
		On("Save", mock.Anything, mock.MatchedBy(func(s user.Session) bool { return s.Token == "tok-2" && s.Role == user.RoleViewer })).
		Return(errors.New("disk full")).
		Once()

	_, err := service.Login(context.Background(), "ana", "x", user.RoleViewer)
	if err == nil {
		t.Fatalf("expected save error")
	}
}
