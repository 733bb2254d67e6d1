package hr

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrLeaveRequestNotFound = errors.New("leave request not found")

// ErrEmptyLeavePeriod is returned when a requested span contains no business
// days (end before start, or a weekend-only span).
var ErrEmptyLeavePeriod = errors.New("end date must be after start date")

type InsufficientBalanceError struct {
	Type      LeaveType
	Required  int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: required %d, available %d",
		e.Type, e.Required, e.Available)
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
