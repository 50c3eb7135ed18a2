package arrears

import (
	"time"

	"github.com/corefin/arrears-engine/internal/domain"
	"github.com/corefin/arrears-engine/pkg/utils"
)

// DefaultGraceDays is the grace window applied after each due date
// when a contract carries no explicit grace setting.
const DefaultGraceDays = 3

// NthDueDate returns the due date of the n-th installment (1-based).
// Installment n falls due n period-lengths after the contract start:
// the first rental is owed one full period in, not on day one.
func NthDueDate(start time.Time, term domain.PeriodTerm, n int) time.Time {
	start = utils.TruncateToDay(start)

	switch term.Unit {
	case domain.PeriodUnitDay:
		return start.AddDate(0, 0, n*term.Count)
	case domain.PeriodUnitWeek:
		return start.AddDate(0, 0, n*term.Count*7)
	case domain.PeriodUnitYear:
		return utils.AddMonths(start, n*term.Count*12)
	default: // month
		return utils.AddMonths(start, n*term.Count)
	}
}

// GraceExpiry returns the date after which an installment due on
// dueDate is considered overdue. The expiry day itself is protected:
// an installment is overdue only once asOf is strictly past it.
func GraceExpiry(dueDate time.Time, graceDays int) time.Time {
	if graceDays < 0 {
		graceDays = 0
	}
	return dueDate.AddDate(0, 0, graceDays)
}

// Overdue reports whether an installment with the given grace expiry
// is overdue as of the given date.
func Overdue(graceExpiry, asOf time.Time) bool {
	return utils.TruncateToDay(asOf).After(utils.TruncateToDay(graceExpiry))
}

func graceDaysOrDefault(contract *domain.LoanContract) int {
	if contract.GraceDays <= 0 {
		return DefaultGraceDays
	}
	return contract.GraceDays
}

// Schedule generates the due schedule for a contract up to asOf. An
// installment is included once its due date has arrived. The result is
// freshly allocated with AmountPaid zeroed; callers run it through
// Allocate to reconcile the payment history.
func Schedule(contract *domain.LoanContract, asOf time.Time) []domain.DuePeriod {
	if contract.StartDate.IsZero() || !contract.PeriodicAmount.IsPositive() {
		return nil
	}

	term := contract.Term()
	asOf = utils.TruncateToDay(asOf)
	graceDays := graceDaysOrDefault(contract)

	var periods []domain.DuePeriod
	for n := 1; ; n++ {
		dueDate := NthDueDate(contract.StartDate, term, n)
		if dueDate.After(asOf) {
			break
		}
		periods = append(periods, domain.DuePeriod{
			Sequence:    n,
			DueDate:     dueDate,
			GraceExpiry: GraceExpiry(dueDate, graceDays),
			AmountDue:   contract.PeriodicAmount,
		})
	}

	return periods
}
