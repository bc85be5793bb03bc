// Package dates holds the app's single calendar-day representation.
//
// A day is the string produced by formatting a time.Time with
// time.DateOnly ("2006-01-02") in the process-local location. All
// date-only rules (due-date validation, the eligibility lookback,
// challenge staleness) compare these strings, never raw timestamps.
package dates

import "time"

// Layout is the canonical day format. It sorts lexicographically.
const Layout = time.DateOnly

// Day truncates t to its calendar day.
func Day(t time.Time) string {
	return t.Format(Layout)
}

// Parse converts a day string back to a UTC midnight. Returns an
// error for anything that is not a valid Layout string.
func Parse(day string) (time.Time, error) {
	return time.ParseInLocation(Layout, day, time.UTC)
}

// Valid reports whether day is a well-formed Layout string.
func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

// DaysBetween returns the number of whole calendar days from one day
// to another (positive when to is later). Both arguments must be
// valid Layout strings; malformed input counts as zero days apart.
func DaysBetween(from, to string) int {
	f, err := Parse(from)
	if err != nil {
		return 0
	}
	t, err := Parse(to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}
