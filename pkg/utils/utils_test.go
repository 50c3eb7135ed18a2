package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "mid-month advance",
			start:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "31 Jan clamps to 28 Feb",
			start:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "31 Jan clamps to 29 Feb in leap year",
			start:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "31 Jan plus two months lands back on 31 Mar",
			start:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   2,
			expected: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "year rollover",
			start:    time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "twelve months preserves day",
			start:    time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			months:   12,
			expected: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(base, base))
	assert.Equal(t, 7, DaysBetween(base, base.AddDate(0, 0, 7)))

	// Negative spans clamp to zero
	assert.Equal(t, 0, DaysBetween(base, base.AddDate(0, 0, -3)))

	// Time-of-day is ignored
	late := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(base, late))
}

func TestTruncateToDay(t *testing.T) {
	noisy := time.Date(2025, 6, 2, 23, 59, 58, 123, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), TruncateToDay(noisy))
}

func TestMinDate(t *testing.T) {
	a := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, a, MinDate(a, b))
	assert.Equal(t, a, MinDate(b, a))
	assert.Equal(t, a, MinDate(a, a))
}
