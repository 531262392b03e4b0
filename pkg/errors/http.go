package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(400, "Bad request")
	ErrNotFound            = NewHTTPError(404, "Not found")
	ErrInternalServerError = NewHTTPError(500, "Internal server error")
)
