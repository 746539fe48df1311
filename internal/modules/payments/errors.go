package payments

import "errors"

var (
	ErrBadMonth    = errors.New("month must be in YYYY-MM format")
	ErrBadDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrAlreadyPaid = errors.New("payment is already marked as paid")
)
