package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"0123456789", "9999999999"}
	for _, p := range valid {
		assert.NoError(t, ValidatePhone(p), p)
	}

	invalid := []string{"", "012345678", "01234567890", "01234s6789", "0123-56789", " 123456789"}
	for _, p := range invalid {
		assert.ErrorIs(t, ValidatePhone(p), ErrInvalidPhone, p)
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jane"))
	assert.ErrorIs(t, ValidateName(""), ErrEmptyName)
	assert.ErrorIs(t, ValidateName("   "), ErrEmptyName)
}
