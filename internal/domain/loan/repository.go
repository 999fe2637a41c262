package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	ListByCollector(ctx context.Context, username string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
