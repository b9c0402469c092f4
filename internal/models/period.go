package models

import (
	"strings"
	"time"
)

// Frequency is the time-bucket width for trend calculations.
type Frequency string

const (
	FrequencyDaily   Frequency = "day"
	FrequencyWeekly  Frequency = "week"
	FrequencyMonthly Frequency = "month"
)

// ParseFrequency resolves a frequency string, falling back to weekly for
// anything it does not recognize.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "daily", "d":
		return FrequencyDaily
	case "month", "monthly", "m":
		return FrequencyMonthly
	default:
		return FrequencyWeekly
	}
}

// Truncate maps a timestamp to the start of its bucket. Weekly buckets
// start on Monday.
func (f Frequency) Truncate(t time.Time) time.Time {
	t = t.UTC()
	switch f {
	case FrequencyDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case FrequencyMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -(weekday - 1))
	}
}

// Label formats a bucket start as its period label.
func (f Frequency) Label(start time.Time) string {
	if f == FrequencyMonthly {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}
