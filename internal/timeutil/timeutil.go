package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly strips an embedded time component from an upstream date string.
// Game dates arrive either as "2024-01-15" or "2024-01-15T00:00:00.000Z".
func DateOnly(value string) string {
	for i := 0; i < len(value); i++ {
		if value[i] == 'T' {
			return value[:i]
		}
	}
	return value
}

// ForwardWindow returns the next n calendar dates starting at from, inclusive.
func ForwardWindow(from time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, FormatDate(from.AddDate(0, 0, i)))
	}
	return dates
}

// CurrentSeason returns the NBA season year for the given time.
// Seasons start in October; before that the prior year's season is current.
func CurrentSeason(t time.Time) int {
	if t.Month() >= time.October {
		return t.Year()
	}
	return t.Year() - 1
}
