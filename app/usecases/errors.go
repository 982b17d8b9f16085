package usecases

import (
	"errors"
	"net/http"

	"BE-HOTEL-ADMIN/app/repositories"
	"BE-HOTEL-ADMIN/app/validation"
)

// UseCaseError carries the HTTP status a handler should answer with.
type UseCaseError struct {
	Code    int
	Message string
	// Fields lists per-field validation failures, if any.
	Fields validation.Errors
}

func (e *UseCaseError) Error() string {
	return e.Message
}

func badRequest(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: message}
}

func invalid(errs validation.Errors) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: "validation failed", Fields: errs}
}

func notFound(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusNotFound, Message: message}
}

func unauthorized(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusUnauthorized, Message: message}
}

func internal() *UseCaseError {
	return &UseCaseError{Code: http.StatusInternalServerError, Message: "internal server error"}
}

// lookupError maps a repository miss to 404 and anything else to 500.
func lookupError(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(message)
	}
	return internal()
}
