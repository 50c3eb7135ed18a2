package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ContractStatusActive     = "active"
	ContractStatusClosed     = "closed"
	ContractStatusDelinquent = "delinquent"
)

// PeriodUnit is the unit a contract's installment interval is expressed in.
type PeriodUnit string

const (
	PeriodUnitDay   PeriodUnit = "day"
	PeriodUnitWeek  PeriodUnit = "week"
	PeriodUnitMonth PeriodUnit = "month"
	PeriodUnitYear  PeriodUnit = "year"
)

// PeriodTerm is the structured form of an installment interval, e.g.
// {20, day} for "20 days" or {1, month} for a plain monthly rental.
type PeriodTerm struct {
	Count int        `json:"count"`
	Unit  PeriodUnit `json:"unit"`
}

// DefaultTerm is the fallback when a stored period description cannot
// be parsed: a single calendar month.
var DefaultTerm = PeriodTerm{Count: 1, Unit: PeriodUnitMonth}

// ParseTerm converts a free-text period description ("20 days",
// "12 months", "1 week") into a PeriodTerm. Unparseable input degrades
// to DefaultTerm; legacy records carry arbitrary text in this column.
func ParseTerm(s string) PeriodTerm {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) != 2 {
		return DefaultTerm
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil || count <= 0 {
		return DefaultTerm
	}

	switch strings.TrimSuffix(fields[1], "s") {
	case "day":
		return PeriodTerm{Count: count, Unit: PeriodUnitDay}
	case "week":
		return PeriodTerm{Count: count, Unit: PeriodUnitWeek}
	case "month":
		return PeriodTerm{Count: count, Unit: PeriodUnitMonth}
	case "year":
		return PeriodTerm{Count: count, Unit: PeriodUnitYear}
	}

	return DefaultTerm
}

// Valid reports whether the term can drive schedule generation.
func (t PeriodTerm) Valid() bool {
	switch t.Unit {
	case PeriodUnitDay, PeriodUnitWeek, PeriodUnitMonth, PeriodUnitYear:
		return t.Count > 0
	}
	return false
}

// LoanContract represents a financed facility whose rentals fall due
// every period from the start date.
type LoanContract struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	ContractID     string          `json:"contract_id" db:"contract_id"`
	StartDate      time.Time       `json:"start_date" db:"start_date"`
	PeriodicAmount decimal.Decimal `json:"periodic_amount" db:"periodic_amount"`
	PeriodCount    int             `json:"period_count" db:"period_count"`
	PeriodUnit     string          `json:"period_unit" db:"period_unit"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate" db:"monthly_rate"`
	GraceDays      int             `json:"grace_days" db:"grace_days"`
	Status         string          `json:"status" db:"status"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// Term returns the contract's installment interval as a structured
// value, falling back to DefaultTerm for invalid stored data.
func (c *LoanContract) Term() PeriodTerm {
	term := PeriodTerm{Count: c.PeriodCount, Unit: PeriodUnit(c.PeriodUnit)}
	if !term.Valid() {
		return DefaultTerm
	}
	return term
}

// DTOs for requests and responses

type CreateContractRequest struct {
	ContractID     string          `json:"contract_id" validate:"required"`
	StartDate      string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	PeriodicAmount decimal.Decimal `json:"periodic_amount" validate:"required"`
	PeriodCount    int             `json:"period_count" validate:"required,gt=0"`
	PeriodUnit     string          `json:"period_unit" validate:"required,oneof=day week month year"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	GraceDays      int             `json:"grace_days" validate:"gte=0"`
}

type CreateContractResponse struct {
	Contract *LoanContract `json:"contract"`
}

type DelinquentResponse struct {
	ContractID   string `json:"contract_id"`
	IsDelinquent bool   `json:"is_delinquent"`
	OverdueCount int    `json:"overdue_count"`
}
