package services

import (
	"errors"
	"fmt"

	"github.com/anjalidev/restaurant-booking-api/internal/models"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrForbidden = errors.New("you can only delete your own bookings")
)

// ValidationError marks malformed or missing input. Handlers translate
// it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CapacityError marks a create that would push a slot past the guest
// cap. Handlers translate it to 400.
type CapacityError struct {
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot book: the total guest capacity of %d for this time slot has been reached", e.Limit)
}

func NewCapacityError() *CapacityError {
	return &CapacityError{Limit: models.MaxGuestsPerSlot}
}
