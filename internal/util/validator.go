package util

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly strips the clock from t, keeping the calendar date at UTC midnight.
// Dates are stored and compared in this normalized form.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the server-local calendar date, normalized.
func Today() time.Time {
	return DateOnly(time.Now())
}
