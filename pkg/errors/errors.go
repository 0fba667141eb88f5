package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")

	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header format")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenIsNotRefresh  = errors.New("token is not a refresh token")
	ErrTokenIsNotAccess   = errors.New("token is not an access token")
)

// HttpError carries the status code the transport layer should answer with.
// Message is safe to show to the caller; Err keeps the internal cause.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewValidationError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...), Err: ErrNotFound}
}

func NewConflictError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	var httpErr *HttpError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusBadRequest
}

func IsConflict(err error) bool {
	var httpErr *HttpError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusConflict
}
