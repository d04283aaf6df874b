package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrBadRequest    = errors.New("malformed request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrRateLimited   = errors.New("too many requests")
	ErrInternal      = errors.New("internal server error")
)

// ApiErr is an error with an HTTP status code and a human-readable message
// that is safe to return to the caller. The wrapped sentinel stays available
// through errors.Is.
type ApiErr struct {
	StatusCode int
	err        error
	Message    string // human message included in the response envelope
	Field      string // field that caused the error, for validation errors
	Details    string // additional detail, logged but also safe to expose
	Cause      error  // underlying cause, logged and never exposed
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as
// an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Code is the stable error string for the response envelope, without the
// detail suffix Error() appends.
func (e *ApiErr) Code() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

// NewNotFound builds the standard identity-lookup-miss error for an entity.
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
		Message:    fmt.Sprintf("The specified %s does not exist", entity),
	}
}

// NewAlreadyExists builds the uniqueness-conflict error for an entity.
func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
		Message:    fmt.Sprintf("A %s with this name already exists", entity),
	}
}

// NewAccessDenied is the uniform response for every authentication failure.
// The caller is never told whether the token was missing, malformed, expired,
// or carried a bad signature.
func NewAccessDenied() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        fmt.Errorf("access denied: %w", ErrUnauthorized),
		Message:    "Valid authentication token required",
	}
}

// NewInvalidCredentials is the uniform login failure. It does not reveal
// which credential was wrong.
func NewInvalidCredentials() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        fmt.Errorf("invalid credentials: %w", ErrUnauthorized),
		Message:    "Email or password is incorrect",
	}
}

// NewRateLimited carries fixed retry guidance for throttled submissions.
func NewRateLimited(retryGuidance string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        fmt.Errorf("too many contact submissions: %w", ErrRateLimited),
		Message:    retryGuidance,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
