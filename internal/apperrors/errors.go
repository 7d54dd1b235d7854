// Package apperrors defines the error taxonomy shared by every core
// operation. Services wrap these sentinels with context via fmt.Errorf and
// callers classify with errors.Is; the HTTP layer maps each class to a
// status code.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessDenied: the actor lacks the role or ownership relation the
	// operation requires. Never retried.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition: the requested status change is not in the
	// transition table, or a precondition such as "quotes open" is false.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyResolved: the relevant field was already finalized (order
	// already assigned, review already exists, quote already answered).
	ErrAlreadyResolved = errors.New("already resolved")

	// ErrValidation: malformed input, rejected before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound: the referenced record does not exist or does not belong
	// to the referenced parent.
	ErrNotFound = errors.New("not found")
)

// InvalidTransition builds an ErrInvalidTransition that tells the caller both
// the current state and the rejected target.
func InvalidTransition(from, to string) error {
	return fmt.Errorf("%w: cannot move from %q to %q", ErrInvalidTransition, from, to)
}

// AccessDenied wraps ErrAccessDenied with the reason.
func AccessDenied(reason string) error {
	return fmt.Errorf("%w: %s", ErrAccessDenied, reason)
}

// Validation wraps ErrValidation with the field-level reason.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
