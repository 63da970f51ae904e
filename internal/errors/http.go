package errors

import (
	"errors"
	"net/http"
)

// Status maps a domain error to its HTTP status code. NotFound is returned
// for both missing entities and unauthorized access to existing ones, so
// callers cannot probe for existence.
func Status(err error) int {
	var vErr *ValidationError
	var taken *FieldTakenError

	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &taken):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrRefreshTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCounterNotFound),
		errors.Is(err, ErrShareNotFound),
		errors.Is(err, ErrInvalidInviteCode):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateCounterID),
		errors.Is(err, ErrInviteCodeTaken),
		errors.Is(err, ErrOwnerCannotJoin):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
