package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/eventservice/user-directory/internal/core/domain"
)

// userValidator wraps go-playground/validator and reports the complete set of
// constraint violations for a candidate user, not just the first.
type userValidator struct {
	v *validator.Validate
}

func newUserValidator() *userValidator {
	return &userValidator{v: validator.New()}
}

// check returns a *domain.ValidationError listing every violation, or nil.
//
// requirePassword distinguishes create from edit: on create an empty password
// is a violation, on edit it means "inherit the stored password" and is
// allowed through (the stored value was validated when it was set).
func (uv *userValidator) check(u *domain.User, requirePassword bool) error {
	var violations []string

	if err := uv.v.Struct(u); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		for _, fe := range ve {
			violations = append(violations, fieldViolation(fe))
		}
	}
	if requirePassword && u.Password == "" {
		violations = append(violations, passwordMessage)
	}

	if len(violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: violations}
}

const (
	usernameMessage = "Username has to be 5-20 characters long"
	emailSyntaxMsg  = "Valid email has to be provided"
	emailLengthMsg  = "Email has to be 10-50 characters"
	passwordMessage = "Password has to be 8-20 characters long"
)

// fieldViolation converts a single validator error into its stable
// human-readable message.
func fieldViolation(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		return usernameMessage
	case "Email":
		if fe.Tag() == "min" || fe.Tag() == "max" {
			return emailLengthMsg
		}
		return emailSyntaxMsg
	case "Password":
		return passwordMessage
	}
	return fe.Field() + " failed validation (" + fe.Tag() + ")"
}
