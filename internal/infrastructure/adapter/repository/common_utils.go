package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

// SQLSTATE codes translated at the repository boundary
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateExclusionViolation   = "23P01"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateIntegrityClass       = "23"
	sqlStateConnectionClass      = "08"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ExclusionError    ErrorType = "exclusion"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier classifies database errors by their Postgres SQLSTATE
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsExclusionViolation(err):
		return ExclusionError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// sqlState returns the SQLSTATE of a Postgres error, or "" for any other error
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return sqlState(err) == sqlStateUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsExclusionViolation checks if the error was raised by an exclusion constraint
func (c *ErrorClassifier) IsExclusionViolation(err error) bool {
	return sqlState(err) == sqlStateExclusionViolation
}

// IsTransientError checks if the transaction failed on a serialization conflict or deadlock
// and may succeed when retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	code := sqlState(err)
	return code == sqlStateSerializationFailure || code == sqlStateDeadlockDetected
}

// IsLockError checks if a row lock could not be obtained without waiting
func (c *ErrorClassifier) IsLockError(err error) bool {
	return sqlState(err) == sqlStateLockNotAvailable
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if strings.HasPrefix(sqlState(err), sqlStateConnectionClass) || pgconn.Timeout(err) {
		return true
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe")
}

// IsConstraintError checks if the error is an integrity constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return strings.HasPrefix(sqlState(err), sqlStateIntegrityClass)
}

// TranslateError maps a database error to a domain error. notFound is returned
// for gorm.ErrRecordNotFound and defaults to ErrNotFound.
func TranslateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound == nil {
			return errs.ErrNotFound
		}
		return notFound
	}

	c := NewErrorClassifier()
	switch c.Classify(err) {
	case ExclusionError:
		return errs.NewConflictError(errs.RuleAssetUnavailable,
			"asset is already reserved for the requested window", nil)
	case DuplicateKeyError:
		return errs.NewConflictError("", "record already exists", nil)
	case TransientError:
		return fmt.Errorf("%w: %s", errs.ErrTransient, err.Error())
	case LockError:
		return fmt.Errorf("%w: %s", errs.ErrLockHeld, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
