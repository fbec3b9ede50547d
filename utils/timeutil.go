// File: utils/timeutil.go
package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical wire format for scheduling dates.
	DateLayout = "2006-01-02"
	// MinutesPerDay bounds every minutes-from-midnight value.
	MinutesPerDay = 24 * 60
)

// FormatMinutes renders minutes-from-midnight as "HH:MM".
func FormatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses "HH:MM" into minutes from midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate validates a "YYYY-MM-DD" date string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// WeekdayOf returns the weekday of a "YYYY-MM-DD" date string.
func WeekdayOf(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}
