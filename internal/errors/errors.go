package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidCredentials  = errors.New("incorrect password")
	ErrUserNotFound        = errors.New("no account found with those credentials")
	ErrRefreshTokenInvalid = errors.New("invalid or expired refresh token")
	ErrCounterNotFound     = errors.New("counter not found")
	ErrDuplicateCounterID  = errors.New("a counter with that id already exists")
	ErrInviteCodeTaken     = errors.New("invite code is already in use")
	ErrOwnerCannotJoin     = errors.New("user owns this counter")
	ErrShareNotFound       = errors.New("no share found for this counter")
	ErrInvalidInviteCode   = errors.New("invalid or expired invite link")
)

// FieldTakenError reports a unique-constraint collision on a user
// identifier, naming the field so the client can surface it.
type FieldTakenError struct {
	Field string
}

func (e *FieldTakenError) Error() string {
	return fmt.Sprintf("%s is already in use", e.Field)
}

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full field-level error list for a 422 response.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
