package members

import "errors"

var (
	ErrBadDNI       = errors.New("DNI must be 8 digits plus its control letter")
	ErrBadEmail     = errors.New("invalid email address")
	ErrBadPhone     = errors.New("phone must be 9 digits starting with 6, 7, 8 or 9")
	ErrBadStatus    = errors.New("unknown client status")
	ErrDuplicateDNI = errors.New("a client with that DNI already exists")
)
