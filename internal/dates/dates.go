package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for calendar-day fields ("2006-01-02").
// Source records carry plain day strings, never timestamps.
const Layout = "2006-01-02"

// Parse converts a stored day string into a UTC midnight time.
// Full RFC3339 timestamps are tolerated by taking their date part,
// since older records were written that way.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(s) > len(Layout) && s[len(Layout)] == 'T' {
		s = s[:len(Layout)]
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format renders a time as a stored day string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Day reduces a time to its calendar day as a UTC midnight, the same
// frame Parse returns. A wall clock in any zone and a stored day string
// therefore compare as plain dates, never as offset instants.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InMonth reports whether t falls within the given calendar month.
func InMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// AddMonths advances t by the given number of calendar months, with
// end-of-month overflow normalized the way time.AddDate does it
// (Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// MonthAfter returns the calendar month following the one t falls in,
// rolling over the year when needed.
func MonthAfter(t time.Time) (int, time.Month) {
	n := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return n.Year(), n.Month()
}
