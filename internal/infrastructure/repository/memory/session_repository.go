package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/user"
)

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]user.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]user.Session)}
}

func (r *SessionRepository) Save(_ context.Context, session user.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = session
	return nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (user.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	return session, ok, nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
