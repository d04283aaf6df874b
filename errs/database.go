package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewDatabaseError wraps a store failure with context about the operation.
// Uniqueness violations and lookup misses surface as their distinct outcomes;
// everything else stays a generic internal error with the detail kept for the
// logs.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key") || IsAlreadyExists(cause):
			conflict := NewAlreadyExists(entity)
			conflict.Details = details
			conflict.Cause = cause
			return conflict
		case strings.Contains(errStr, "record not found") || IsNotFound(cause):
			notFound := NewNotFound(entity)
			notFound.Details = details
			notFound.Cause = cause
			return notFound
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Message:    "Something went wrong. Please try again later.",
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Message:    "Something went wrong",
		Details:    details,
		Cause:      cause,
	}
}
