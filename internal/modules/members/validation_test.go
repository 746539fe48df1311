package members

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDNI(t *testing.T) {
	// 12345678 % 23 == 14 -> 'Z'; 0 % 23 == 0 -> 'T'
	assert.True(t, IsValidDNI("12345678Z"))
	assert.True(t, IsValidDNI("00000000T"))
	assert.True(t, IsValidDNI("12345678z"))   // case-insensitive
	assert.True(t, IsValidDNI(" 12345678Z ")) // whitespace trimmed

	assert.False(t, IsValidDNI("12345678A")) // wrong control letter
	assert.False(t, IsValidDNI("1234567Z"))  // too short
	assert.False(t, IsValidDNI("123456789")) // no letter
	assert.False(t, IsValidDNI(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ana.perez@example.com"))
	assert.True(t, IsValidEmail("luis+gym@mail.es"))

	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("612345678"))
	assert.True(t, IsValidPhone("912345678"))

	assert.False(t, IsValidPhone("512345678")) // must start 6/7/8/9
	assert.False(t, IsValidPhone("61234567"))  // 8 digits
	assert.False(t, IsValidPhone("6123456789"))
	assert.False(t, IsValidPhone(""))
}
