package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NetworkError reports a transport failure talking to the remote source.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError reports a non-success status returned by the remote source.
type HTTPError struct {
	Op         string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: remote returned status %d", e.Op, e.StatusCode)
}

// IsRemoteError reports whether err originated at the remote source boundary.
func IsRemoteError(err error) bool {
	var netErr *NetworkError
	var httpErr *HTTPError
	return errors.As(err, &netErr) || errors.As(err, &httpErr)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		status := http.StatusBadGateway
		if httpErr.StatusCode == http.StatusNotFound {
			status = http.StatusNotFound
		}
		return &DomainError{
			Code:       "REMOTE_REJECTED",
			Message:    "remote source rejected the request",
			HTTPStatus: status,
			Details:    map[string]any{"operation": httpErr.Op, "remote_status": httpErr.StatusCode},
			Err:        err,
		}
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return &DomainError{
			Code:       "REMOTE_UNAVAILABLE",
			Message:    "remote source unavailable",
			HTTPStatus: http.StatusBadGateway,
			Details:    map[string]any{"operation": netErr.Op},
			Err:        err,
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
