package apierror

import (
	"errors"
	"net/http"
)

// ApiError is the failure shape the cart service hands to the HTTP boundary:
// an HTTP-style status code plus a human-readable message. Controllers
// translate it into a transport response; they never inspect anything else.
type ApiError struct {
	StatusCode int    `json:"code"`
	Message    string `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func New(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

// NotFound builds a 404 error.
func NotFound(message string) *ApiError {
	return New(http.StatusNotFound, message)
}

// BadRequest builds a 400 error.
func BadRequest(message string) *ApiError {
	return New(http.StatusBadRequest, message)
}

// Internal wraps an unexpected lower-level failure as a 500, carrying the
// underlying error's message verbatim.
func Internal(err error) *ApiError {
	return New(http.StatusInternalServerError, err.Error())
}

// StatusOf returns the status code carried by err, or 500 when err is not
// an ApiError.
func StatusOf(err error) int {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
