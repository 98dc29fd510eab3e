package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventservice/user-directory/internal/core/domain"
)

func invoke(t *testing.T, method, path string, err error, legacy bool) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), legacy)(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_EnvelopeShape(t *testing.T) {
	code, body := invoke(t, http.MethodPost, "/api/v3/users", domain.ErrUsernameTaken, true)

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	for _, field := range []string{"timestamp", "status", "error", "message", "path"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("envelope missing field %q: %v", field, body)
		}
	}
	if body["path"] != "/api/v3/users" {
		t.Fatalf("expected request path in envelope, got %v", body["path"])
	}
	if body["status"] != float64(http.StatusBadRequest) {
		t.Fatalf("expected body status to match http status, got %v", body["status"])
	}
}

func TestErrorHandler_UsernameConflict(t *testing.T) {
	code, body := invoke(t, http.MethodPost, "/api/v3/users", domain.ErrUsernameTaken, true)
	if code != http.StatusBadRequest || body["message"] != "Username already registered" || body["error"] != "Bad request" {
		t.Fatalf("unexpected response: %d %v", code, body)
	}
}

func TestErrorHandler_EmailConflict(t *testing.T) {
	code, body := invoke(t, http.MethodPost, "/api/v3/users", domain.ErrEmailTaken, true)
	if code != http.StatusBadRequest || body["message"] != "Email already registered" {
		t.Fatalf("unexpected response: %d %v", code, body)
	}
}

func TestErrorHandler_ValidationJoinsViolations(t *testing.T) {
	err := &domain.ValidationError{Violations: []string{
		"Username has to be 5-20 characters long",
		"Password has to be 8-20 characters long",
	}}
	code, body := invoke(t, http.MethodPost, "/api/v3/users", err, true)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	want := "Username has to be 5-20 characters long; Password has to be 8-20 characters long"
	if body["message"] != want {
		t.Fatalf("expected joined violations, got %v", body["message"])
	}
}

func TestErrorHandler_FindNotFound_Legacy(t *testing.T) {
	code, body := invoke(t, http.MethodGet, "/api/v3/users/ghost", domain.ErrUserNotFound, true)
	if code != http.StatusBadRequest || body["message"] != "User doesn't exist" || body["error"] != "Bad request" {
		t.Fatalf("unexpected legacy find response: %d %v", code, body)
	}
}

func TestErrorHandler_FindNotFound_Uniform(t *testing.T) {
	code, body := invoke(t, http.MethodGet, "/api/v3/users/ghost", domain.ErrUserNotFound, false)
	if code != http.StatusNotFound || body["error"] != "Not found" {
		t.Fatalf("unexpected uniform find response: %d %v", code, body)
	}
}

func TestErrorHandler_DeleteNotFound(t *testing.T) {
	code, body := invoke(t, http.MethodDelete, "/api/v3/users/ghost", domain.ErrUserNotFound, true)
	if code != http.StatusNotFound || body["message"] != "User doesn't exist" || body["error"] != "Not found" {
		t.Fatalf("unexpected delete response: %d %v", code, body)
	}
}

func TestErrorHandler_UpstreamFailure(t *testing.T) {
	code, body := invoke(t, http.MethodGet, "/api/v3/countries", domain.ErrUpstreamUnavailable, true)
	if code != http.StatusInternalServerError || body["message"] != "Internal server error" {
		t.Fatalf("unexpected upstream response: %d %v", code, body)
	}
}

func TestErrorHandler_UnclassifiedFailure(t *testing.T) {
	code, body := invoke(t, http.MethodPost, "/api/v3/users", errors.New("mongo exploded"), true)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// No internal detail may leak.
	if body["message"] != "Internal server error" {
		t.Fatalf("expected generic message, got %v", body["message"])
	}
}
