// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")
	ErrStale           = errors.New("stale data")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "session", "risk", "view", "gateway"
	Op      string // Operation that failed, e.g., "Login", "Fetch"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Session domain errors
var (
	ErrBadCredentials  = NewDomainError("session", "Login", ErrUnauthorized, "invalid credentials")
	ErrSessionMissing  = NewDomainError("session", "Restore", ErrNotFound, "no persisted session")
	ErrSessionPartial  = NewDomainError("session", "Restore", ErrInvalidState, "persisted session is incomplete")
	ErrInvalidRole     = NewDomainError("session", "Validate", ErrInvalidInput, "role must be student or mentor")
	ErrInvalidIdentity = NewDomainError("session", "Validate", ErrInvalidEntity, "identity is incomplete")
	ErrInvalidTheme    = NewDomainError("session", "Validate", ErrInvalidInput, "theme must be light or dark")
)

// Risk domain errors
var (
	ErrPayloadIncomplete = NewDomainError("risk", "Validate", ErrInvalidEntity, "dashboard payload is missing required blocks")
	ErrInvalidRiskLevel  = NewDomainError("risk", "Validate", ErrInvalidInput, "risk level must be low, medium or high")
	ErrInvalidAttendance = NewDomainError("risk", "Validate", ErrValueOutOfRange, "attendance figures are inconsistent")
	ErrInvalidAssignment = NewDomainError("risk", "Validate", ErrInvalidEntity, "assignment is incomplete")
)

// View domain errors
var (
	ErrNotOnDashboard  = NewDomainError("view", "SelectTab", ErrStateTransition, "no dashboard is active")
	ErrInvalidTab      = NewDomainError("view", "SelectTab", ErrInvalidInput, "unknown navigation tab")
	ErrFilterForbidden = NewDomainError("view", "SetRiskFilter", ErrStateTransition, "risk filter is mentor-only")
	ErrInvalidFilter   = NewDomainError("view", "SetRiskFilter", ErrInvalidInput, "unknown risk filter")
)

// Gateway errors
var (
	ErrConnection     = NewDomainError("gateway", "Request", ErrExternalService, "connection error")
	ErrDetailNotFound = NewDomainError("gateway", "StudentDetails", ErrNotFound, "student details not found")
)
