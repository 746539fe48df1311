package members

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dniRe   = regexp.MustCompile(`^\d{8}[A-Z]$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[6789]\d{8}$`)
)

// dniLetters maps number mod 23 to the control letter of a Spanish DNI.
const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// IsValidDNI checks a real Spanish DNI: 8 digits plus the control
// letter computed from the number. Case and surrounding whitespace are
// ignored.
func IsValidDNI(dni string) bool {
	dni = strings.ToUpper(strings.TrimSpace(dni))
	if !dniRe.MatchString(dni) {
		return false
	}
	n, err := strconv.Atoi(dni[:8])
	if err != nil {
		return false
	}
	return dni[8] == dniLetters[n%23]
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// IsValidPhone checks a Spanish phone number: 9 digits starting with
// 6, 7, 8 or 9.
func IsValidPhone(phone string) bool {
	return phoneRe.MatchString(strings.TrimSpace(phone))
}
