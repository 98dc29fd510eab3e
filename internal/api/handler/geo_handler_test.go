package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventservice/user-directory/internal/core/domain"
)

type stubGeoProvider struct {
	countriesFn func(ctx context.Context) ([]domain.Country, error)
	citiesFn    func(ctx context.Context, countryID string) ([]domain.City, error)
}

func (s *stubGeoProvider) Countries(ctx context.Context) ([]domain.Country, error) {
	return s.countriesFn(ctx)
}

func (s *stubGeoProvider) Cities(ctx context.Context, countryID string) ([]domain.City, error) {
	return s.citiesFn(ctx, countryID)
}

func TestGeoHandler_Countries_Success(t *testing.T) {
	e := echo.New()
	stub := &stubGeoProvider{
		countriesFn: func(ctx context.Context) ([]domain.Country, error) {
			return []domain.Country{{ID: "1", Name: "Latvia"}, {ID: "2", Name: "Estonia"}}, nil
		},
	}
	h := NewGeoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v3/countries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Countries(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Latvia" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestGeoHandler_Cities_PassesCountryID(t *testing.T) {
	e := echo.New()
	stub := &stubGeoProvider{
		citiesFn: func(ctx context.Context, countryID string) ([]domain.City, error) {
			if countryID != "42" {
				t.Fatalf("unexpected country id: %s", countryID)
			}
			return []domain.City{{Name: "Riga"}}, nil
		},
	}
	h := NewGeoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("cityId")
	c.SetParamValues("42")

	if err := h.Cities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGeoHandler_UpstreamFailurePropagates(t *testing.T) {
	e := echo.New()
	stub := &stubGeoProvider{
		countriesFn: func(ctx context.Context) ([]domain.Country, error) {
			return nil, domain.ErrUpstreamUnavailable
		},
	}
	h := NewGeoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v3/countries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Countries(c); !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable to propagate, got %v", err)
	}
}
