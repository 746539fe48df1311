package booking

import (
	"regexp"
	"time"

	"gymdesk/internal/config"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// IsValidDate checks the YYYY-MM-DD shape only; calendar validity is
// left to the business-day rule, which actually parses the date.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsValidTime checks HH:MM within 00:00–23:59.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}

// IsBusinessDay reports whether the date falls on Monday through
// Friday. A date that does not parse is not a business day.
func IsBusinessDay(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ExactDuration reports whether end minus start, both HH:MM on a common
// day, equals d exactly.
func ExactDuration(start, end string, d time.Duration) bool {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return false
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return false
	}
	return e.Sub(s) == d
}

// DeriveEnd computes the end of a slot starting at start. A slot that
// would roll past midnight yields an end the duration rule rejects.
func DeriveEnd(start string, d time.Duration) string {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return ""
	}
	return s.Add(d).Format("15:04")
}

// ValidateSlot applies the booking rules in a fixed order — date
// format, business day, start time format, end time format, exact
// duration — and stops at the first failure so the caller always sees
// the same message for the same input.
func ValidateSlot(date, start, end string, policy config.BookingPolicy) error {
	if !IsValidDate(date) {
		return ErrBadDate
	}
	if !policy.AllowWeekends && !IsBusinessDay(date) {
		return ErrNotBusinessDay
	}
	if !IsValidTime(start) {
		return ErrBadStartTime
	}
	if !IsValidTime(end) {
		return ErrBadEndTime
	}
	if !ExactDuration(start, end, policy.SlotDuration) {
		return ErrBadDuration
	}
	return nil
}
