package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4000
	CodeInvalidBlock       = 4001
	CodeInvalidTransition  = 4002
	CodeReservationExpired = 4003
	CodeUnauthorized       = 4010
	CodeForbidden          = 4030
	CodeNotFound           = 4040
	CodeConflict           = 4090

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeExternalService = 5020
)

// Kind classifies an error into the reservation error taxonomy
type Kind string

// Taxonomy kinds
const (
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindExternalService Kind = "external_service"
	KindStateTransition Kind = "state_transition"
	KindInternal        Kind = "internal"
)

// Rule identifies which admission rule rejected a request
type Rule string

// Admission rules
const (
	RuleInvalidBlock       Rule = "INVALID_BLOCK"
	RuleAssetUnavailable   Rule = "ASSET_UNAVAILABLE"
	RuleBlockLimitExceeded Rule = "BLOCK_LIMIT_EXCEEDED"
	RuleCourseRestriction  Rule = "COURSE_RESTRICTION"
	RuleOutstandingBalance Rule = "OUTSTANDING_BALANCE"
	RuleConcurrentRequest  Rule = "CONCURRENT_REQUEST"
	RuleInsufficientRole   Rule = "INSUFFICIENT_ROLE"
)

// Base error types
var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation failed")

	// ErrInvalidBlock is returned when a window does not match a defined block
	ErrInvalidBlock = errors.New("requested window does not match a reservable block")

	// ErrConflict is returned when a reservation collides with existing state
	ErrConflict = errors.New("reservation conflict")

	// ErrForbidden is returned when the caller may not perform the operation
	ErrForbidden = errors.New("operation not permitted")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrReservationNotFound is returned when the requested reservation doesn't exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAssetNotFound is returned when the requested asset doesn't exist
	ErrAssetNotFound = errors.New("asset not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrFineNotFound is returned when the requested fine doesn't exist
	ErrFineNotFound = errors.New("fine not found")

	// ErrInvalidTransition is returned when a lifecycle operation is attempted from the wrong state
	ErrInvalidTransition = errors.New("invalid reservation state transition")

	// ErrReservationExpired is returned when checkout is attempted after the reservation ended
	ErrReservationExpired = errors.New("reservation has expired")

	// ErrStaleStatus is returned by storage when the optimistic status guard fails
	ErrStaleStatus = errors.New("reservation status changed concurrently")

	// ErrExternalService is returned when the inventory system fails
	ErrExternalService = errors.New("external inventory service failure")

	// ErrLockHeld is returned when an admission lock is held by another request
	ErrLockHeld = errors.New("lock is held by another request")

	// ErrTransient is returned for serialization failures and deadlocks. The operation may be retried.
	ErrTransient = errors.New("transient database conflict")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidBlock):
		return CodeInvalidBlock
	case errors.Is(err, ErrReservationExpired):
		return CodeReservationExpired
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	}

	switch KindOf(err) {
	case KindValidation:
		return CodeValidation
	case KindConflict:
		return CodeConflict
	case KindForbidden:
		return CodeForbidden
	case KindNotFound:
		return CodeNotFound
	case KindExternalService:
		return CodeExternalService
	case KindStateTransition:
		return CodeInvalidTransition
	default:
		return CodeInternalServer
	}
}

// KindOf classifies err. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrReservationExpired):
		return KindStateTransition
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidBlock):
		return KindValidation
	case errors.Is(err, ErrConflict), errors.Is(err, ErrStaleStatus),
		errors.Is(err, ErrTransient), errors.Is(err, ErrLockHeld):
		return KindConflict
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case IsNotFoundError(err):
		return KindNotFound
	case errors.Is(err, ErrExternalService):
		return KindExternalService
	default:
		return KindInternal
	}
}

// ValidationError describes malformed input. No I/O has been performed when it is returned.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is matches ErrValidation and the wrapped cause
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewInvalidBlockError reports a window that does not match any block offered on its date
func NewInvalidBlockError(reason string) error {
	return &ValidationError{Field: "window", Reason: reason, Err: ErrInvalidBlock}
}

// ConflictError is a rejection after reading current state
type ConflictError struct {
	Rule    Rule
	Message string
	Details map[string]any
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// Is matches ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "conflict",
		"rule":       string(e.Rule),
		"error":      e.Message,
		"error_code": CodeConflict,
	}
	for k, v := range e.Details {
		fields[k] = v
	}
	return fields
}

// NewConflictError creates a conflict rejection for a rule
func NewConflictError(rule Rule, message string, details map[string]any) error {
	return &ConflictError{Rule: rule, Message: message, Details: details}
}

// NewWeeklyLimitError reports an exhausted weekly quota for a category
func NewWeeklyLimitError(category string, used, limit int) error {
	return &ConflictError{
		Rule:    RuleBlockLimitExceeded,
		Message: fmt.Sprintf("Weekly limit exceeded for category %s", category),
		Details: map[string]any{"category": category, "used": used, "limit": limit},
	}
}

// ForbiddenError is a policy denial for the acting user
type ForbiddenError struct {
	Rule    Rule
	Message string
}

// Error implements the error interface
func (e *ForbiddenError) Error() string {
	return e.Message
}

// Is matches ErrForbidden
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

// NewForbiddenError creates a policy denial
func NewForbiddenError(rule Rule, message string) error {
	return &ForbiddenError{Rule: rule, Message: message}
}

// StateTransitionError reports a lifecycle operation attempted from the wrong state
type StateTransitionError struct {
	ReservationID string
	Operation     string
	Current       string
	Expected      []string
	Err           error
}

// Error implements the error interface
func (e *StateTransitionError) Error() string {
	if errors.Is(e.Err, ErrReservationExpired) {
		return fmt.Sprintf("cannot %s reservation %s: reservation has expired", e.Operation, e.ReservationID)
	}
	return fmt.Sprintf("cannot %s reservation %s: current status %s, expected %s",
		e.Operation, e.ReservationID, e.Current, strings.Join(e.Expected, " or "))
}

// Unwrap returns the underlying error
func (e *StateTransitionError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidTransition
	}
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StateTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "state_transition",
		"reservation_id": e.ReservationID,
		"operation":      e.Operation,
		"current":        e.Current,
		"expected":       e.Expected,
		"error_code":     CodeInvalidTransition,
	}
}

// NewStateTransitionError creates a transition error reporting current vs expected state
func NewStateTransitionError(reservationID, operation, current string, expected ...string) error {
	return &StateTransitionError{
		ReservationID: reservationID,
		Operation:     operation,
		Current:       current,
		Expected:      expected,
	}
}

// ExternalServiceError wraps an inventory-system failure. Callers may retry.
type ExternalServiceError struct {
	Operation string
	Messages  []string
	Err       error
}

// Error implements the error interface
func (e *ExternalServiceError) Error() string {
	msg := fmt.Sprintf("inventory %s failed", e.Operation)
	if len(e.Messages) > 0 {
		msg += ": " + strings.Join(e.Messages, " ")
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

// Is matches ErrExternalService
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// Unwrap returns the underlying error
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the operation
func (e *ExternalServiceError) Retryable() bool {
	return true
}

// NewExternalServiceError creates an inventory failure
func NewExternalServiceError(operation string, messages []string, err error) error {
	return &ExternalServiceError{Operation: operation, Messages: messages, Err: err}
}

// NotFoundError names the missing resource
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Unwrap returns the underlying error
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not found error wrapping the resource sentinel
func NewNotFoundError(resource, id string, sentinel error) error {
	if sentinel == nil {
		sentinel = ErrNotFound
	}
	return &NotFoundError{Resource: resource, ID: id, Err: sentinel}
}

// RuleOf returns the admission rule carried by err, if any
func RuleOf(err error) Rule {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict.Rule
	}
	var forbidden *ForbiddenError
	if errors.As(err, &forbidden) {
		return forbidden.Rule
	}
	switch {
	case errors.Is(err, ErrInvalidBlock):
		return RuleInvalidBlock
	case errors.Is(err, ErrTransient), errors.Is(err, ErrLockHeld), errors.Is(err, ErrStaleStatus):
		return RuleConcurrentRequest
	}
	return ""
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrFineNotFound)
}

// IsConflictError checks if the error is a conflict rejection
func IsConflictError(err error) bool {
	return KindOf(err) == KindConflict
}

// IsTransientError checks if the error may succeed when retried
func IsTransientError(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsExternalServiceError checks if the error came from the inventory system
func IsExternalServiceError(err error) bool {
	return errors.Is(err, ErrExternalService)
}

// IsStateTransitionError checks if the error is an invalid lifecycle transition
func IsStateTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrReservationExpired)
}
