package services

import (
	"errors"
	"fmt"
)

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrNotCheckedIn    = errors.New("guest is not checked in")
	ErrNoDraft         = errors.New("no checkout draft for this guest")
	ErrDraftSubmitting = errors.New("checkout draft is being submitted")
)

// ValidationError is a client-side validation failure, caught before any
// network call and rendered next to the offending field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
