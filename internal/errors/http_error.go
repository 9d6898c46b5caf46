package errors

import (
	stderrors "errors"
	"net/http"

	"hairsalon/internal/repository"
	"hairsalon/internal/salon"
	"hairsalon/internal/wizard"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromErr maps domain errors onto HTTP status codes. Validation problems are
// the caller's fault, missing sessions are 404, wrong-state operations and
// slot conflicts are 409, and upstream backend failures surface as 502.
func FromErr(err error) *HTTPError {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case stderrors.Is(err, wizard.ErrInvalidPhone),
		stderrors.Is(err, wizard.ErrEmptyName),
		stderrors.Is(err, wizard.ErrNoSchedule),
		stderrors.Is(err, wizard.ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case stderrors.Is(err, wizard.ErrSlotConflict),
		stderrors.Is(err, wizard.ErrInvalidTransition):
		return NewHTTPError(http.StatusConflict, err.Error())
	case stderrors.Is(err, repository.ErrSessionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	}

	var apiErr *salon.APIError
	if stderrors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "salon backend request failed"
		}
		return NewHTTPError(http.StatusBadGateway, msg)
	}

	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
