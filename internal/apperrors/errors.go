// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these; handlers translate them to HTTP statuses.
// None of them is fatal: every one surfaces as a user-visible notice.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a directly requested record is missing or
	// does not belong to the caller. List joins never return it; they degrade
	// to placeholder values instead so views keep rendering.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyApplied is returned when an applicant already has an
	// application for the job.
	ErrAlreadyApplied = errors.New("already applied for this job")

	// ErrInvalidState is returned when an operation is not permitted in the
	// record's current status, e.g. withdrawing a non-pending application.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrAuthRequired is returned when an action needs a signed-in identity.
	ErrAuthRequired = errors.New("authentication required")
)

// ValidationError reports a missing or malformed request field. The
// operation is aborted before any write happens.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}
