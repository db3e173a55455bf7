package clients

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed gateway call. Transport and decode failures carry the
// underlying error, HTTP failures carry the status code and the raw body.
type APIError struct {
	Type       ErrorType
	Method     string
	Path       string
	StatusCode int
	Body       string
	Message    string
	Err        error
}

type ErrorType int

const (
	ErrorTypeGeneral ErrorType = iota
	ErrorTypeBadRequest
	ErrorTypeUnauthorized
	ErrorTypeNotFound
	ErrorTypeTransport
	ErrorTypeDecode
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeBadRequest:
		return "bad_request"
	case ErrorTypeUnauthorized:
		return "unauthorized"
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeDecode:
		return "decode"
	default:
		return "general"
	}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a 404 answer from the API
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsUnauthorized checks if the error is a 401/403 answer from the API
func IsUnauthorized(err error) bool {
	return hasType(err, ErrorTypeUnauthorized)
}

// IsBadRequest checks if the error is a 400 answer from the API
func IsBadRequest(err error) bool {
	return hasType(err, ErrorTypeBadRequest)
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func hasType(err error, t ErrorType) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}

// NewStatusError classifies a non-2xx answer.
func NewStatusError(method, path string, statusCode int, body string) *APIError {
	t := ErrorTypeGeneral
	switch statusCode {
	case http.StatusBadRequest:
		t = ErrorTypeBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		t = ErrorTypeUnauthorized
	case http.StatusNotFound:
		t = ErrorTypeNotFound
	}
	return &APIError{
		Type:       t,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
		Message:    fmt.Sprintf("%s %s failed with status %d: %s", method, path, statusCode, body),
	}
}

// NewTransportError wraps a failure to reach the API.
func NewTransportError(method, path string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeTransport,
		Method:  method,
		Path:    path,
		Message: fmt.Sprintf("%s %s: failed to send request: %v", method, path, err),
		Err:     err,
	}
}

// NewDecodeError wraps a response body that does not match the expected shape.
func NewDecodeError(method, path string, err error) *APIError {
	return &APIError{
		Type:    ErrorTypeDecode,
		Method:  method,
		Path:    path,
		Message: fmt.Sprintf("%s %s: failed to unmarshal response: %v", method, path, err),
		Err:     err,
	}
}
