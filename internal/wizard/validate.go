package wizard

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrSlotConflict      = errors.New("time slot is already selected for another service")
	ErrNoSchedule        = errors.New("at least one schedule slot is required")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidPhone      = errors.New("phone number must be 10 digits and contain only numbers")
	ErrEmptyName         = errors.New("name must not be empty")
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidatePhone accepts exactly 10 numeric characters, nothing else.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
