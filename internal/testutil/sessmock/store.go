// Package sessmock is an in-memory session store for handler and middleware
// tests.
package sessmock

import (
	"context"
	"sync"

	"loantrack/internal/adapter/session"
	"loantrack/internal/domain/user"
	"loantrack/pkg/id"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func New() *Store {
	return &Store{sessions: make(map[string]*session.Session)}
}

func (s *Store) Create(ctx context.Context, username string, role user.Role) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session.Session{Token: id.NewID32(), Username: username, Role: role}
	s.sessions[sess.Token] = sess
	return sess, nil
}

func (s *Store) Get(ctx context.Context, token string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Len reports how many sessions are live; handy for logout assertions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
