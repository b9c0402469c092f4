package models

import (
	"testing"
	"time"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		input string
		want  Frequency
	}{
		{"day", FrequencyDaily},
		{"Daily", FrequencyDaily},
		{"d", FrequencyDaily},
		{"week", FrequencyWeekly},
		{"month", FrequencyMonthly},
		{"M", FrequencyMonthly},
		{"fortnight", FrequencyWeekly},
		{"", FrequencyWeekly},
	}
	for _, tt := range tests {
		if got := ParseFrequency(tt.input); got != tt.want {
			t.Errorf("ParseFrequency(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	// Thursday, March 5 2026, mid-afternoon.
	ts := time.Date(2026, time.March, 5, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		freq Frequency
		want time.Time
	}{
		{FrequencyDaily, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{FrequencyWeekly, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{FrequencyMonthly, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := tt.freq.Truncate(ts); !got.Equal(tt.want) {
			t.Errorf("%v.Truncate = %v, want %v", tt.freq, got, tt.want)
		}
	}

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, time.March, 8, 10, 0, 0, 0, time.UTC)
	if got := FrequencyWeekly.Truncate(sunday); !got.Equal(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("sunday truncated to %v, want Monday March 2", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := FrequencyWeekly.Label(start); got != "2026-03-02" {
		t.Errorf("weekly label = %q", got)
	}
	if got := FrequencyMonthly.Label(start); got != "2026-03" {
		t.Errorf("monthly label = %q", got)
	}
}
