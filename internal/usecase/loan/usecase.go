package loan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"loantrack/internal/domain/loan"
	"loantrack/pkg/finance"
)

// repayGateway is the mobile-money till dialed for repayments.
const repayGateway = "256761263253"

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

// Apply originates a loan: terms come from the fixed formulas, the loan starts
// pending and unassigned.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplicationDTO, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, errors.New("name and phone are required")
	}
	interest, fees, total, err := finance.OriginationTerms(in.Amount)
	if err != nil {
		return nil, err
	}

	l := &loan.Loan{
		Name:     in.Name,
		Phone:    in.Phone,
		Amount:   in.Amount,
		Interest: interest,
		Fees:     fees,
		Total:    total,
		Status:   loan.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	return &ApplicationDTO{
		LoanDTO:      toDTO(l),
		DisburseLink: fmt.Sprintf("tel:*165*1*%s#", money(l.Amount)),
		RepayLink:    fmt.Sprintf("tel:*165*3*1*%s*%s#", repayGateway, money(l.Total)),
	}, nil
}

// Assign sets the collector on a loan. The username is a weak reference and is
// not checked against the user table; reassignment is allowed at any status.
func (u *Usecase) Assign(ctx context.Context, loanID uint64, collector string) error {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return err
	}
	l.AssignedCollector = collector
	return u.repo.Save(ctx, l)
}

// MarkPaid settles a loan, adding the late fee accrued between the due date and
// now. Marking an already-paid loan is a no-op returning its current state.
func (u *Usecase) MarkPaid(ctx context.Context, loanID uint64, now time.Time) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Status == loan.StatusPaid {
		dto := toDTO(l)
		return &dto, nil
	}

	fee := finance.LateFee(now, finance.DueDate(l.CreatedAt))
	l.LateFee = fee
	l.Total += fee
	l.Status = loan.StatusPaid
	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

// AdminBoard lists every loan with the running profit figure.
func (u *Usecase) AdminBoard(ctx context.Context) (*AdminBoardDTO, error) {
	loans, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &AdminBoardDTO{Loans: make([]LoanDTO, 0, len(loans))}
	for i := range loans {
		out.Loans = append(out.Loans, toDTO(&loans[i]))
		out.Profit += loans[i].Interest + loans[i].Fees
	}
	return out, nil
}

// CollectorBoard lists the loans assigned to one collector.
func (u *Usecase) CollectorBoard(ctx context.Context, username string) ([]LoanDTO, error) {
	loans, err := u.repo.ListByCollector(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, toDTO(&loans[i]))
	}
	return out, nil
}

func toDTO(l *loan.Loan) LoanDTO {
	return LoanDTO{
		ID:                l.ID,
		Name:              l.Name,
		Phone:             l.Phone,
		Amount:            l.Amount,
		Interest:          l.Interest,
		Fees:              l.Fees,
		LateFee:           l.LateFee,
		Total:             l.Total,
		Status:            l.Status,
		AssignedCollector: l.AssignedCollector,
		CreatedAt:         l.CreatedAt,
		DueDate:           finance.DueDate(l.CreatedAt),
	}
}

// money renders an amount the way it appears in a dial string: no exponent,
// no trailing zeros.
func money(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
