package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		input    string
		expected PeriodTerm
	}{
		{"20 days", PeriodTerm{Count: 20, Unit: PeriodUnitDay}},
		{"1 day", PeriodTerm{Count: 1, Unit: PeriodUnitDay}},
		{"2 weeks", PeriodTerm{Count: 2, Unit: PeriodUnitWeek}},
		{"1 month", PeriodTerm{Count: 1, Unit: PeriodUnitMonth}},
		{"12 months", PeriodTerm{Count: 12, Unit: PeriodUnitMonth}},
		{"1 year", PeriodTerm{Count: 1, Unit: PeriodUnitYear}},
		{"  3   Months ", PeriodTerm{Count: 3, Unit: PeriodUnitMonth}},

		// Anything unparseable degrades to one month
		{"", DefaultTerm},
		{"monthly", DefaultTerm},
		{"20", DefaultTerm},
		{"0 days", DefaultTerm},
		{"-2 weeks", DefaultTerm},
		{"twenty days", DefaultTerm},
		{"20 fortnights", DefaultTerm},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTerm(tt.input))
		})
	}
}

func TestContractTerm_FallsBackOnInvalidStoredData(t *testing.T) {
	contract := &LoanContract{
		ContractID:     "HP-9",
		PeriodicAmount: decimal.NewFromInt(5000),
		PeriodCount:    0,
		PeriodUnit:     "fortnight",
	}

	assert.Equal(t, DefaultTerm, contract.Term())

	contract.PeriodCount = 20
	contract.PeriodUnit = "day"
	assert.Equal(t, PeriodTerm{Count: 20, Unit: PeriodUnitDay}, contract.Term())
}
