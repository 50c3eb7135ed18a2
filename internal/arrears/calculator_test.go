package arrears

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corefin/arrears-engine/internal/domain"
)

func computeFor(contract *domain.LoanContract, payments []domain.Payment, asOf time.Time) *domain.ArrearsResult {
	return Compute(contract, Allocate(Schedule(contract, asOf), payments), asOf)
}

func TestAccrue(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		days      int
		expected  decimal.Decimal
	}{
		{
			name:      "one week at 3 percent monthly",
			principal: decimal.NewFromInt(5000),
			rate:      decimal.NewFromInt(3),
			days:      7,
			expected:  decimal.NewFromInt(35), // 5000 * 0.03 / 30 * 7
		},
		{
			name:      "zero days",
			principal: decimal.NewFromInt(5000),
			rate:      decimal.NewFromInt(3),
			days:      0,
			expected:  decimal.Zero,
		},
		{
			name:      "negative days clamp to zero",
			principal: decimal.NewFromInt(5000),
			rate:      decimal.NewFromInt(3),
			days:      -10,
			expected:  decimal.Zero,
		},
		{
			name:      "zero rate",
			principal: decimal.NewFromInt(5000),
			rate:      decimal.Zero,
			days:      7,
			expected:  decimal.Zero,
		},
		{
			name:      "rounds to two decimal places",
			principal: decimal.NewFromInt(3333),
			rate:      decimal.NewFromInt(3),
			days:      7,
			expected:  decimal.NewFromFloat(23.33), // 3333 * 0.03 / 30 * 7 = 23.331
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Accrue(tt.principal, tt.rate, tt.days)
			assert.True(t, got.Equal(tt.expected), "got %s, want %s", got, tt.expected)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestCompute_ContractStartedToday(t *testing.T) {
	asOf := date(2025, 6, 1)
	contract := monthlyContract(asOf, 5000)

	result := computeFor(contract, nil, asOf)

	assert.Equal(t, domain.ArrearsStatusOK, result.Status)
	assert.Equal(t, 0, result.OverduePeriods)
	assert.Equal(t, 0, result.TotalOverdueDays)
	assert.True(t, result.TotalArrears.IsZero())
	assert.True(t, result.InterestAccrued.IsZero())
	assert.True(t, result.ShouldHavePaidByToday.Equal(decimal.NewFromInt(5000)),
		"the first rental is owed in the should-have-paid sense from day one, got %s", result.ShouldHavePaidByToday)
}

func TestCompute_OnePeriodOverdueNoPayments(t *testing.T) {
	asOf := date(2025, 6, 1)
	contract := monthlyContract(asOf.AddDate(0, 0, -40), 5000) // started 2025-04-22

	result := computeFor(contract, nil, asOf)

	require.Equal(t, domain.ArrearsStatusOK, result.Status)
	assert.Equal(t, 1, result.OverduePeriods)
	assert.Equal(t, 7, result.TotalOverdueDays) // due 05-22, grace to 05-25
	assert.True(t, result.RentalDue.Equal(decimal.NewFromInt(5000)))
	assert.True(t, result.InterestAccrued.Equal(decimal.NewFromInt(35)))
	assert.True(t, result.TotalArrears.Equal(decimal.NewFromInt(5035)))
	assert.True(t, result.ShouldHavePaidByToday.Equal(decimal.NewFromInt(10035)),
		"arrears plus the running installment, got %s", result.ShouldHavePaidByToday)
	assert.True(t, result.TotalPaid.IsZero())
}

func TestCompute_PartialPaymentReducesArrears(t *testing.T) {
	contract := monthlyContract(date(2025, 1, 1), 5000)
	payments := []domain.Payment{payment(date(2025, 2, 2), 7000)}
	asOf := date(2025, 3, 10)

	result := computeFor(contract, payments, asOf)

	// First installment settled by FIFO; only the 3000 outstanding on
	// the second installment is in arrears.
	assert.Equal(t, 1, result.OverduePeriods)
	assert.Equal(t, 6, result.TotalOverdueDays) // grace to 03-04
	assert.True(t, result.RentalDue.Equal(decimal.NewFromInt(3000)))
	assert.True(t, result.InterestAccrued.Equal(decimal.NewFromInt(18))) // 3000 * 0.03 / 30 * 6
	assert.True(t, result.TotalArrears.Equal(decimal.NewFromInt(3018)))
	assert.True(t, result.TotalPaid.Equal(decimal.NewFromInt(7000)))
}

func TestCompute_GraceBoundary(t *testing.T) {
	contract := monthlyContract(date(2025, 1, 1), 5000) // first due 02-01, grace to 02-04

	onExpiry := computeFor(contract, nil, date(2025, 2, 4))
	assert.Equal(t, 0, onExpiry.OverduePeriods)
	assert.True(t, onExpiry.TotalArrears.IsZero())
	assert.True(t, onExpiry.ShouldHavePaidByToday.Equal(decimal.NewFromInt(5000)))

	dayAfter := computeFor(contract, nil, date(2025, 2, 5))
	assert.Equal(t, 1, dayAfter.OverduePeriods)
	assert.Equal(t, 1, dayAfter.TotalOverdueDays)
	assert.True(t, dayAfter.TotalArrears.Equal(decimal.NewFromInt(5005)))
}

func TestCompute_FullyPaidHasZeroArrears(t *testing.T) {
	contract := monthlyContract(date(2025, 1, 1), 5000)
	payments := []domain.Payment{
		payment(date(2025, 2, 1), 5000),
		payment(date(2025, 3, 1), 5000),
	}

	result := computeFor(contract, payments, date(2025, 3, 10))

	assert.Equal(t, 0, result.OverduePeriods)
	assert.Equal(t, 0, result.TotalOverdueDays)
	assert.True(t, result.TotalArrears.IsZero())
	assert.True(t, result.InterestAccrued.IsZero())
	assert.True(t, result.TotalPaid.Equal(decimal.NewFromInt(10000)))
}

func TestCompute_OverdueDaysCappedPerPeriod(t *testing.T) {
	// Three missed installments: each accrues only until the next one
	// falls due, not over the whole default span.
	contract := monthlyContract(date(2025, 1, 1), 5000)
	asOf := date(2025, 5, 2) // installment due 05-01 is still inside grace

	result := computeFor(contract, nil, asOf)

	require.Equal(t, 3, result.OverduePeriods)
	// 02-04..03-01 = 25d, 03-04..04-01 = 28d, 04-04..05-01 = 27d
	assert.Equal(t, 80, result.TotalOverdueDays)
	assert.True(t, result.RentalDue.Equal(decimal.NewFromInt(15000)))
}

func TestCompute_OverduePeriodsMonotonicInAsOf(t *testing.T) {
	contract := monthlyContract(date(2025, 1, 1), 5000)
	payments := []domain.Payment{payment(date(2025, 2, 20), 5000)}

	previous := 0
	for day := 0; day < 180; day++ {
		asOf := date(2025, 1, 1).AddDate(0, 0, day)
		result := computeFor(contract, payments, asOf)

		require.GreaterOrEqual(t, result.OverduePeriods, previous,
			"overdue count regressed at %s", asOf)
		require.GreaterOrEqual(t, result.TotalOverdueDays, 0)
		require.False(t, result.InterestAccrued.IsNegative())
		require.False(t, result.RentalDue.IsNegative())

		previous = result.OverduePeriods
	}
}

func TestCompute_InsufficientData(t *testing.T) {
	asOf := date(2025, 6, 1)

	missingStart := monthlyContract(time.Time{}, 5000)
	result := Compute(missingStart, Allocation{}, asOf)
	assert.Equal(t, domain.ArrearsStatusInsufficientData, result.Status)
	assert.NotEmpty(t, result.Reason)
	assert.True(t, result.TotalArrears.IsZero())
	assert.True(t, result.ShouldHavePaidByToday.IsZero())

	zeroAmount := monthlyContract(date(2025, 1, 1), 0)
	result = Compute(zeroAmount, Allocation{}, asOf)
	assert.Equal(t, domain.ArrearsStatusInsufficientData, result.Status)
	assert.Equal(t, 0, result.OverduePeriods)
}
