package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventservice/user-directory/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors.
type errorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

const (
	msgUserNotFound  = "User doesn't exist"
	msgUsernameTaken = "Username already registered"
	msgEmailTaken    = "Email already registered"
	msgInternal      = "Internal server error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps workflow failures to their HTTP status codes and stable messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the envelope {timestamp, status, error, message, path}.
//
// legacyFindNotFound preserves the original behaviour of answering 400 when a
// GET by username misses; edit and delete always answer 404 on a miss.
func NewHTTPErrorHandler(log zerolog.Logger, legacyFindNotFound bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := resolveError(err, log, c, legacyFindNotFound)
		_ = c.JSON(status, errorBody{
			Timestamp: time.Now().UTC().Format("2006-01-02"),
			Status:    status,
			Error:     statusLabel(status),
			Message:   msg,
			Path:      c.Request().URL.Path,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, legacyFindNotFound bool) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if ve, ok := domain.AsValidationError(err); ok {
		return http.StatusBadRequest, ve.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, msgUsernameTaken
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, msgEmailTaken
	case errors.Is(err, domain.ErrUserNotFound):
		// Only the find route misses on GET; edit and delete carry other verbs.
		if legacyFindNotFound && c.Request().Method == http.MethodGet {
			return http.StatusBadRequest, msgUserNotFound
		}
		return http.StatusNotFound, msgUserNotFound
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("upstream failure")
		return http.StatusInternalServerError, msgInternal
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgInternal
}

// statusLabel is the short status label carried in the error envelope.
func statusLabel(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusInternalServerError:
		return "Internal server error"
	}
	return http.StatusText(status)
}
