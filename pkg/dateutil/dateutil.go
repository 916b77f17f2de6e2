package dateutil

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the canonical year-month key format used for historical
// aggregates ("2006-01"). Keys sort lexicographically in chronological order.
const MonthKeyLayout = "2006-01"

// ParseMonthKey parses a year-month key into the first instant of that month (UTC).
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// AddMonths adds a number of months to a date.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// DaysBetween returns whole days from one instant to another.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
