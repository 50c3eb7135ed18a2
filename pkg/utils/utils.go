package utils

import (
	"time"
)

// TruncateToDay drops the time-of-day component in the value's location.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddMonths advances a date by whole calendar months, clamping the day
// of month to the last valid day of the target month (31 Jan + 1 month
// = 28/29 Feb). Schedule arithmetic relies on this single policy.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from one date
// to another. Negative spans are clamped to zero so clock skew or
// forward-dated payments never produce negative day counts.
func DaysBetween(from, to time.Time) int {
	days := int(TruncateToDay(to).Sub(TruncateToDay(from)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MinDate returns the earlier of two dates.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
