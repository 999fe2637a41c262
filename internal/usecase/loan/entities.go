package loan

import (
	"time"

	"loantrack/internal/domain/loan"
)

type ApplyInput struct {
	Name   string
	Phone  string
	Amount float64
}

type LoanDTO struct {
	ID                uint64      `json:"id"`
	Name              string      `json:"name"`
	Phone             string      `json:"phone"`
	Amount            float64     `json:"amount"`
	Interest          float64     `json:"interest"`
	Fees              float64     `json:"fees"`
	LateFee           float64     `json:"late_fee"`
	Total             float64     `json:"total"`
	Status            loan.Status `json:"status"`
	AssignedCollector string      `json:"assigned_collector"`
	CreatedAt         time.Time   `json:"created_at"`
	DueDate           time.Time   `json:"due_date"`
}

// ApplicationDTO is what the borrower sees right after applying: the repayment
// figure, the deadline, and the two mobile-money dial strings.
type ApplicationDTO struct {
	LoanDTO
	DisburseLink string `json:"disburse_link"`
	RepayLink    string `json:"repay_link"`
}

// AdminBoardDTO is the admin landing view: every loan plus the point-in-time
// profit sum of interest+fees (late fees excluded).
type AdminBoardDTO struct {
	Loans  []LoanDTO `json:"loans"`
	Profit float64   `json:"profit"`
}
