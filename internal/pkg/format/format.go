// Package format holds the small display helpers the desktop tool
// used for dates, durations and fees.
package format

import (
	"fmt"
	"time"
)

// Date converts "YYYY-MM-DD" to "DD/MM/YYYY". Empty input yields "",
// anything unparseable is returned unchanged.
func Date(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// Today returns the current date as "YYYY-MM-DD".
func Today() string {
	return time.Now().Format("2006-01-02")
}

// NowClock returns the current wall-clock time as "HH:MM".
func NowClock() string {
	return time.Now().Format("15:04")
}

// DurationMinutes returns the minutes from start to end, both "HH:MM".
// Invalid input or an end before the start yields 0.
func DurationMinutes(start, end string) int {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	m := int(e.Sub(s).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// Fee renders a membership fee as "€XX.XX".
func Fee(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}
