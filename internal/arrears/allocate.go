package arrears

import (
	"sort"

	"github.com/corefin/arrears-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Allocation is a due schedule reconciled against a payment history.
type Allocation struct {
	Periods []domain.DuePeriod
	// Unallocated is whatever the payment history covers beyond the
	// generated schedule. It is carried explicitly so that the sum of
	// per-period AmountPaid plus Unallocated always equals TotalPaid.
	Unallocated decimal.Decimal
	TotalPaid   decimal.Decimal
}

// Allocate applies completed payments FIFO against the due schedule:
// oldest payment first, earliest installment first. A single payment
// may settle several installments and a single installment may absorb
// several payments. Inputs are not mutated.
func Allocate(periods []domain.DuePeriod, payments []domain.Payment) Allocation {
	alloc := Allocation{
		Periods:     make([]domain.DuePeriod, len(periods)),
		Unallocated: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	copy(alloc.Periods, periods)

	sorted := make([]domain.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaymentDate.Before(sorted[j].PaymentDate)
	})

	idx := 0
	for _, payment := range sorted {
		alloc.TotalPaid = alloc.TotalPaid.Add(payment.Amount)

		remaining := payment.Amount
		for remaining.IsPositive() && idx < len(alloc.Periods) {
			period := &alloc.Periods[idx]
			gap := period.AmountDue.Sub(period.AmountPaid)
			if !gap.IsPositive() {
				idx++
				continue
			}

			applied := decimal.Min(remaining, gap)
			period.AmountPaid = period.AmountPaid.Add(applied)
			remaining = remaining.Sub(applied)

			if period.Settled() {
				idx++
			}
		}

		alloc.Unallocated = alloc.Unallocated.Add(remaining)
	}

	return alloc
}
