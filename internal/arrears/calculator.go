package arrears

import (
	"time"

	"github.com/corefin/arrears-engine/internal/domain"
	"github.com/corefin/arrears-engine/pkg/utils"
	"github.com/shopspring/decimal"
)

// Penalty interest prorates daily against a flat 30-day month. The
// schedule itself uses real calendar months; only the rate conversion
// assumes 30 days.
const interestDayBase = 30

var hundred = decimal.NewFromInt(100)

// Accrue computes simple daily-prorated penalty interest on an overdue
// principal: principal * monthlyRatePercent/100 * days/30. Negative day
// counts are clamped to zero, so the result is never negative.
func Accrue(principal, monthlyRatePercent decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 || !principal.IsPositive() || !monthlyRatePercent.IsPositive() {
		return decimal.Zero
	}

	return principal.
		Mul(monthlyRatePercent).Div(hundred).
		Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(interestDayBase)).
		Round(2)
}

// Compute produces the arrears summary for a reconciled due schedule
// as of the given date.
//
// An installment counts as overdue once its grace expiry is strictly
// past and it is not fully paid. Overdue-day accrual for an installment
// stops when the next installment falls due, so a long-running default
// accrues per period rather than compounding the whole span onto the
// first missed rental. Rental due and interest both work off the
// outstanding portion, so partial payments reduce arrears.
func Compute(contract *domain.LoanContract, alloc Allocation, asOf time.Time) *domain.ArrearsResult {
	if contract.StartDate.IsZero() {
		return domain.ZeroArrearsResult(domain.ArrearsStatusInsufficientData, "contract start date is missing")
	}
	if !contract.PeriodicAmount.IsPositive() {
		return domain.ZeroArrearsResult(domain.ArrearsStatusInsufficientData, "periodic amount is not positive")
	}

	asOf = utils.TruncateToDay(asOf)
	term := contract.Term()

	result := domain.ZeroArrearsResult(domain.ArrearsStatusOK, "")
	result.TotalPaid = alloc.TotalPaid

	for _, period := range alloc.Periods {
		if period.Settled() || !Overdue(period.GraceExpiry, asOf) {
			continue
		}

		nextDue := NthDueDate(contract.StartDate, term, period.Sequence+1)
		days := utils.DaysBetween(period.GraceExpiry, utils.MinDate(asOf, nextDue))
		outstanding := period.Outstanding()

		result.OverduePeriods++
		result.TotalOverdueDays += days
		result.RentalDue = result.RentalDue.Add(outstanding)
		result.InterestAccrued = result.InterestAccrued.Add(Accrue(outstanding, contract.MonthlyRate, days))
	}

	result.TotalArrears = result.RentalDue.Add(result.InterestAccrued)

	// The installment currently running its period still counts toward
	// what the customer should have settled by today: once a period has
	// started, its rental is owed in the grace-sensitive sense even
	// though it is not yet in arrears.
	result.ShouldHavePaidByToday = result.TotalArrears
	if currentInstallmentStarted(contract, alloc.Periods, asOf) {
		result.ShouldHavePaidByToday = result.ShouldHavePaidByToday.Add(contract.PeriodicAmount)
	}

	return result
}

// currentInstallmentStarted reports whether the earliest installment
// not yet overdue as of asOf has begun its period. The slot is
// synthesized past the generated schedule when every generated
// installment is already overdue.
func currentInstallmentStarted(contract *domain.LoanContract, periods []domain.DuePeriod, asOf time.Time) bool {
	term := contract.Term()
	graceDays := graceDaysOrDefault(contract)

	sequence := 1
	for _, period := range periods {
		if !Overdue(period.GraceExpiry, asOf) {
			break
		}
		sequence = period.Sequence + 1
	}

	if Overdue(GraceExpiry(NthDueDate(contract.StartDate, term, sequence), graceDays), asOf) {
		// Happens only past the generated schedule on degenerate data.
		return false
	}

	spanStart := utils.TruncateToDay(contract.StartDate)
	if sequence > 1 {
		spanStart = NthDueDate(contract.StartDate, term, sequence-1)
	}
	return !utils.TruncateToDay(asOf).Before(spanStart)
}
