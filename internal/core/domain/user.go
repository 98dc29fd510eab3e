package domain

import (
	"errors"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already registered")
var ErrEmailTaken = errors.New("email already registered")

// User is the account record managed by the directory.
//
// ID is assigned by the persistence layer on first save and never changes
// afterwards. Password is write-only: it is accepted on input and stored, but
// no transport representation ever emits it. Role is owned by the system — a
// client-supplied role is overwritten on create and ignored on edit.
type User struct {
	ID       string
	Username string `validate:"required,min=5,max=20"`
	Email    string `validate:"required,email,min=10,max=50"`
	Password string `validate:"omitempty,min=8"`
	Role     string
}

// ValidationError carries the complete set of field-level violations found in
// a candidate user. An empty violation set is never wrapped in one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
