// Package usermock provides a function-field test double for the user
// repository.
package usermock

import (
	"context"
	"errors"

	domain "loantrack/internal/domain/user"
)

type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, errors.New("not implemented")
}
