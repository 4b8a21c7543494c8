package usecase

import (
	"errors"
	"fmt"

	"artisanlink/internal/domain/entities"
)

var (
	ErrRequestNotFound  = errors.New("service request not found")
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrPaymentNotFound  = errors.New("down payment not found")

	// ErrPaymentNotCaptured: the provider reports the down payment as not
	// approved; the AWAITING_PAYMENT gate stays closed.
	ErrPaymentNotCaptured = errors.New("down payment not captured")
)

// InvalidStateError: the request (or its estimate) was not in a state the
// operation accepts. Not blindly retriable: the caller must re-fetch current
// state and decide whether the intended action still applies.
type InvalidStateError struct {
	Op      entities.Command
	Current entities.RequestStatus
	Allowed []entities.RequestStatus
	Reason  string
}

func (e *InvalidStateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid state %s: %s", e.Op, e.Current, e.Reason)
	}
	return fmt.Sprintf("%s: invalid state %s (allowed: %v)", e.Op, e.Current, e.Allowed)
}

func newInvalidState(op entities.Command, current entities.RequestStatus) *InvalidStateError {
	return &InvalidStateError{Op: op, Current: current, Allowed: entities.Preconditions(op)}
}

// AuthorizationError: the actor lacks the relationship the operation requires
// (not the owning client, not the assigned artisan, not an admin).
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "forbidden: " + e.Reason
}

// ValidationError: the payload is malformed. Safe to retry after correction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// PersistenceError: the storage layer failed. Retriable: every transition is
// a single atomic unit, so no partial write is ever observable.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failure in " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
