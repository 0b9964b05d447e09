package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code and error code it
// should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError. Code doubles as the status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{StatusCode: code, Code: code, Message: message}
}

// NewBadRequestError creates a 400 HTTPError with the given application error code.
func NewBadRequestError(code int, message string) *HTTPError {
	return &HTTPError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// AsHTTPError unwraps err into an HTTPError if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
