package validator

import (
	"testing"

	"gymdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidate_RequiredFields(t *testing.T) {
	c := domain.Client{FirstName: "Laura"}

	errs := Validate(c)
	assert.NotNil(t, errs)
	assert.Equal(t, "required", errs["LastName"])
	assert.Equal(t, "required", errs["DNI"])
	assert.NotContains(t, errs, "FirstName")
}

func TestValidate_CleanStruct(t *testing.T) {
	c := domain.Client{FirstName: "Laura", LastName: "Gómez", DNI: "12345678Z"}

	assert.Nil(t, Validate(c))
}

func TestDetails_NonFieldError(t *testing.T) {
	assert.Nil(t, Details(assert.AnError))
}
