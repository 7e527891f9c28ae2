package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/hireflow/internal/ingestion"
	"github.com/jonathan/hireflow/internal/pipeline"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Callers branch on the error kind, not the message; the message is
// still surfaced for diagnostic value.
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		notFound    *pipeline.NotFoundError
		conflict    *pipeline.ConflictError
		validation  *pipeline.ValidationError
		upstream    *pipeline.UpstreamError
		dispatch    *pipeline.DispatchError
		unreadable  *ingestion.ErrUnreadable
	)

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &upstream), errors.As(err, &dispatch):
		return http.StatusBadGateway
	case errors.As(err, &unreadable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
