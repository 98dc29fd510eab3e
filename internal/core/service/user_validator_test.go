package service

import (
	"testing"

	"github.com/eventservice/user-directory/internal/core/domain"
)

func TestValidator_ValidUser(t *testing.T) {
	uv := newUserValidator()
	u := &domain.User{Username: "user123", Email: "email123@gmail.com", Password: "password123"}
	if err := uv.check(u, true); err != nil {
		t.Fatalf("expected no violations, got %v", err)
	}
}

func TestValidator_ReportsEveryViolation(t *testing.T) {
	uv := newUserValidator()
	u := &domain.User{Username: "abc", Email: "bad", Password: "short"}

	err := uv.check(u, true)
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(ve.Violations), ve.Violations)
	}
}

func TestValidator_Messages(t *testing.T) {
	uv := newUserValidator()

	cases := []struct {
		name string
		user domain.User
		want string
	}{
		{"username too short", domain.User{Username: "abcd", Email: "email123@gmail.com", Password: "password123"}, usernameMessage},
		{"username too long", domain.User{Username: "abcdefghijklmnopqrstu", Email: "email123@gmail.com", Password: "password123"}, usernameMessage},
		{"email bad syntax", domain.User{Username: "user123", Email: "definitely-not-an-email", Password: "password123"}, emailSyntaxMsg},
		{"email too short", domain.User{Username: "user123", Email: "a@b.co", Password: "password123"}, emailLengthMsg},
		{"password too short", domain.User{Username: "user123", Email: "email123@gmail.com", Password: "1234567"}, passwordMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uv.check(&tc.user, true)
			ve, ok := domain.AsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, v := range ve.Violations {
				if v == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected violation %q, got %v", tc.want, ve.Violations)
			}
		})
	}
}

func TestValidator_EmptyPasswordAllowedOnEdit(t *testing.T) {
	uv := newUserValidator()
	u := &domain.User{Username: "user123", Email: "email123@gmail.com"}

	if err := uv.check(u, false); err != nil {
		t.Fatalf("expected empty password to pass on edit, got %v", err)
	}
	if err := uv.check(u, true); err == nil {
		t.Fatalf("expected empty password to fail on create")
	}
}
