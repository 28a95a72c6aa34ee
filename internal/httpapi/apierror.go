package httpapi

import (
	"errors"
	"net/http"

	"focuswave/internal/repository"
	"focuswave/internal/service"
)

// APIError is the JSON error envelope returned by every endpoint.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func Internal(message string) *APIError {
	if message == "" {
		message = "internal server error"
	}
	return NewAPIError(http.StatusInternalServerError, "internal_error", message)
}

func BadRequest(code, message string) *APIError {
	return NewAPIError(http.StatusBadRequest, code, message)
}

func Unauthorized(message string) *APIError {
	if message == "" {
		message = "unauthorized"
	}
	return NewAPIError(http.StatusUnauthorized, "unauthorized", message)
}

func NotFound(code, message string) *APIError {
	return NewAPIError(http.StatusNotFound, code, message)
}

func Conflict(code, message string) *APIError {
	return NewAPIError(http.StatusConflict, code, message)
}

// fromError maps service and repository errors to the API envelope.
func fromError(err error) *APIError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return BadRequest("validation_failed", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		return NotFound("not_found", "resource not found")
	case errors.Is(err, service.ErrEmailTaken):
		return Conflict("email_taken", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return Unauthorized(err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		return Unauthorized(err.Error())
	default:
		return Internal("")
	}
}
