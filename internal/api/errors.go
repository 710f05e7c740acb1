package api

import (
	"fmt"
	"net/http"
	"strings"
)

type ApiError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func lower(s string) string {
	return strings.ToLower(s)
}

// NewAuthenticationError covers every credential failure on protected
// endpoints: missing header, bad signature, expired token, identity that
// no longer resolves. The specific cause is logged, never returned.
func NewAuthenticationError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusUnauthorized,
		Message:    "authentication failed",
	}
}

func NewUnauthorizedError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusUnauthorized,
		Message:    msg,
	}
}

func NewValidationError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    msg,
	}
}

func NewBadRequestError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    lower(http.StatusText(http.StatusBadRequest)),
	}
}

func NewNotFoundError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusNotFound,
		Message:    msg,
	}
}

func NewOwnershipError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusForbidden,
		Message:    msg,
	}
}

func NewDuplicateError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusConflict,
		Message:    msg,
	}
}

func NewStateError(msg string) *ApiError {
	return &ApiError{
		StatusCode: http.StatusConflict,
		Message:    msg,
	}
}

func NewInternalServerError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    lower(http.StatusText(http.StatusInternalServerError)),
		Err:        err,
	}
}

func NewMethodNotAllowedError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusMethodNotAllowed,
		Message:    lower(http.StatusText(http.StatusMethodNotAllowed)),
	}
}
