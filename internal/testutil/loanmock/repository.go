// Package loanmock provides a function-field test double for the loan
// repository so usecase and handler tests can script persistence behavior.
package loanmock

import (
	"context"
	"errors"

	domain "loantrack/internal/domain/loan"
)

type Repo struct {
	CreateFn          func(ctx context.Context, l *domain.Loan) error
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListAllFn         func(ctx context.Context) ([]domain.Loan, error)
	ListByCollectorFn func(ctx context.Context, username string) ([]domain.Loan, error)
	SaveFn            func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) ListByCollector(ctx context.Context, username string) ([]domain.Loan, error) {
	if m.ListByCollectorFn != nil {
		return m.ListByCollectorFn(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
