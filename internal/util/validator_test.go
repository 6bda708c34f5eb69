package util

import (
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31",
		"2025-06-15",
	}

	for _, s := range testCases {
		d, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", s, err)
			continue
		}
		if FormatDate(d) != s {
			t.Errorf("FormatDate(ParseDate(%q)) = %q, want %q", s, FormatDate(d), s)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"2024-13-01",
		"2024-01-32",
		"01-01-2024",
		"2024/01/01",
		"not-a-date",
	}

	for _, s := range testCases {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2024, 5, 20, 23, 45, 12, 999, loc)

	got := DateOnly(in)

	want := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}

func TestToday_IsMidnight(t *testing.T) {
	got := Today()
	h, m, s := got.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("Today() = %v, want midnight", got)
	}
}
