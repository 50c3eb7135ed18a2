package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Arrears computation status. InsufficientData is distinct from a zero
// result: it means the contract record cannot drive a calculation at
// all, and callers must not present the zeroed figures as "no arrears".
const (
	ArrearsStatusOK               = "ok"
	ArrearsStatusInsufficientData = "insufficient_data"
)

// DuePeriod is one installment slot of the generated due schedule.
// Derived fresh on every calculation, never persisted.
type DuePeriod struct {
	Sequence    int             `json:"sequence"`
	DueDate     time.Time       `json:"due_date"`
	GraceExpiry time.Time       `json:"grace_expiry"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
}

// Outstanding returns the unpaid portion of the installment.
func (p DuePeriod) Outstanding() decimal.Decimal {
	return p.AmountDue.Sub(p.AmountPaid)
}

// Settled reports whether the installment is fully paid.
func (p DuePeriod) Settled() bool {
	return p.AmountPaid.GreaterThanOrEqual(p.AmountDue)
}

// ArrearsResult is the collections summary for a contract as of a
// given date.
type ArrearsResult struct {
	Status                string          `json:"status"`
	Reason                string          `json:"reason,omitempty"`
	OverduePeriods        int             `json:"overdue_periods"`
	TotalOverdueDays      int             `json:"total_overdue_days"`
	RentalDue             decimal.Decimal `json:"rental_due"`
	InterestAccrued       decimal.Decimal `json:"interest_accrued"`
	TotalArrears          decimal.Decimal `json:"total_arrears"`
	ShouldHavePaidByToday decimal.Decimal `json:"should_have_paid_by_today"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
}

// ZeroArrearsResult returns a zeroed result tagged with the given
// status so decimal fields marshal as "0" rather than null.
func ZeroArrearsResult(status, reason string) *ArrearsResult {
	return &ArrearsResult{
		Status:                status,
		Reason:                reason,
		RentalDue:             decimal.Zero,
		InterestAccrued:       decimal.Zero,
		TotalArrears:          decimal.Zero,
		ShouldHavePaidByToday: decimal.Zero,
		TotalPaid:             decimal.Zero,
	}
}

type ArrearsResponse struct {
	ContractID string         `json:"contract_id"`
	AsOf       time.Time      `json:"as_of"`
	Arrears    *ArrearsResult `json:"arrears"`
}

type InstallmentsResponse struct {
	ContractID  string          `json:"contract_id"`
	AsOf        time.Time       `json:"as_of"`
	Periods     []DuePeriod     `json:"periods"`
	Unallocated decimal.Decimal `json:"unallocated"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
}
