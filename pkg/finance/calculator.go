package finance

import (
	"errors"
	"math"
	"time"
)

const (
	// RepaymentTarget is the fixed total a borrower repays after the 7-day term.
	RepaymentTarget = 60000.0

	InterestRate  = 0.028
	TaxRate       = 0.18
	LateFeePerDay = 2500.0
	TermDays      = 7
)

// ErrPrincipalTooLarge means interest alone pushes the loan past the fixed
// repayment target, which would make the balancing fee negative.
var ErrPrincipalTooLarge = errors.New("principal exceeds repayment target")

// OriginationTerms computes interest, fees and total for a new loan.
// Fees balance the loan up to RepaymentTarget; total = amount + interest + fees.
func OriginationTerms(amount float64) (interest, fees, total float64, err error) {
	if amount <= 0 {
		return 0, 0, 0, errors.New("principal must be positive")
	}
	interest = math.Round(amount * InterestRate)
	fees = math.Round(RepaymentTarget - amount - interest)
	if fees < 0 {
		return 0, 0, 0, ErrPrincipalTooLarge
	}
	total = amount + interest + fees
	return interest, fees, total, nil
}

// DueDate is the fixed-term repayment deadline.
func DueDate(createdAt time.Time) time.Time {
	return createdAt.Add(TermDays * 24 * time.Hour)
}

// LateFee accrues per whole day past due; fractional days truncate toward zero.
func LateFee(now, due time.Time) float64 {
	if !now.After(due) {
		return 0
	}
	daysLate := int(now.Sub(due).Hours() / 24)
	return float64(daysLate) * LateFeePerDay
}

// TaxAndProfit derives tax and net profit from a loan's earnings.
func TaxAndProfit(interest, fees, lateFee float64) (tax, netProfit float64) {
	tax = math.Round(TaxRate * (interest + fees + lateFee))
	netProfit = interest + fees + lateFee - tax
	return tax, netProfit
}
