package database

import (
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps errors raised outside the repositories, at connect,
// begin and commit, to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already carry
// a domain classification pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindInternal || errors.Is(err, errs.ErrDatabaseConnection) {
		return err
	}

	mapped := repository.TranslateError(err, nil)
	if errors.Is(mapped, errs.ErrDatabaseConnection) {
		return fmt.Errorf("%w: %s failed: %s", errs.ErrDatabaseConnection, operation, err.Error())
	}
	return mapped
}

// IsRetryable reports whether the operation that produced err may succeed if
// attempted again: serialization failures, deadlocks and lost connections.
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errs.ErrTransient) {
		return true
	}
	return m.classifier.IsTransientError(err) || m.classifier.IsConnectionError(err)
}
