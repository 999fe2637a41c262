package report

import (
	"context"
	"strconv"
	"time"

	"loantrack/internal/domain/loan"
	"loantrack/pkg/finance"
)

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

type Row struct {
	LoanID    uint64
	Name      string
	Phone     string
	Principal float64
	Interest  float64
	Fees      float64
	LateFee   float64
	Total     float64
	Tax       float64
	NetProfit float64
	Status    loan.Status
	Collector string
}

// Header matches the fixed column order of the financial export.
func Header() []string {
	return []string{"Loan ID", "Name", "Phone", "Principal", "Interest", "Fees",
		"Late Fees", "Total", "Tax", "Net Profit", "Status", "Collector"}
}

func (r Row) Record() []string {
	return []string{
		strconv.FormatUint(r.LoanID, 10),
		r.Name,
		r.Phone,
		num(r.Principal),
		num(r.Interest),
		num(r.Fees),
		num(r.LateFee),
		num(r.Total),
		num(r.Tax),
		num(r.NetProfit),
		string(r.Status),
		r.Collector,
	}
}

// FinancialRows builds one row per loan. Paid loans report the late fee
// recorded at settlement; pending loans past due report the fee accrued so
// far, so the export can never disagree with a settled total.
func (u *Usecase) FinancialRows(ctx context.Context, now time.Time) ([]Row, error) {
	loans, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		lateFee := l.LateFee
		if l.Status != loan.StatusPaid {
			lateFee = finance.LateFee(now, finance.DueDate(l.CreatedAt))
		}
		tax, netProfit := finance.TaxAndProfit(l.Interest, l.Fees, lateFee)
		rows = append(rows, Row{
			LoanID:    l.ID,
			Name:      l.Name,
			Phone:     l.Phone,
			Principal: l.Amount,
			Interest:  l.Interest,
			Fees:      l.Fees,
			LateFee:   lateFee,
			Total:     l.Total,
			Tax:       tax,
			NetProfit: netProfit,
			Status:    l.Status,
			Collector: l.AssignedCollector,
		})
	}
	return rows, nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
