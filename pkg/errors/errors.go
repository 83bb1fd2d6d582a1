package errors

import "net/http"

// HTTPError is a domain error annotated with the HTTP status code it should
// surface as. Delivery layers produce these from their mapError switches.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is the fallback for unmapped domain errors.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
