package booking

import "errors"

// Rule errors are ordinary outcomes returned to the caller; each one
// names the rule that rejected the input.
var (
	ErrBadDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrNotBusinessDay = errors.New("bookings are only allowed Monday through Friday")
	ErrBadStartTime   = errors.New("start time must be in HH:MM format")
	ErrBadEndTime     = errors.New("end time must be in HH:MM format")
	ErrBadDuration    = errors.New("booking duration must equal the slot length")

	ErrBadStatus               = errors.New("unknown booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")

	// ErrNotAvailable is a conflict, not bad input: the slot overlaps an
	// existing non-cancelled booking and the caller should pick another.
	ErrNotAvailable = errors.New("equipment is not available in that slot")
)

// IsValidationError distinguishes bad-input outcomes from conflicts and
// infrastructure failures.
func IsValidationError(err error) bool {
	for _, rule := range []error{
		ErrBadDate, ErrNotBusinessDay, ErrBadStartTime, ErrBadEndTime,
		ErrBadDuration, ErrBadStatus, ErrInvalidStatusTransition,
	} {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}
