package services

import (
	"errors"
	"fmt"
)

// ErrInvoiceNotFound is returned by Get and Delete for an unknown invoice id.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ValidationError rejects a create request before any mutation happens.
// Reason is user-facing and names the offending field or item.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
