package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventservice/user-directory/internal/core/ports"
)

// GeoHandler serves the country/city pass-through routes. Payloads are
// forwarded as decoded from upstream; the whole result sequence is collected
// into one response body.
type GeoHandler struct {
	provider ports.GeoProvider
}

func NewGeoHandler(provider ports.GeoProvider) *GeoHandler {
	return &GeoHandler{provider: provider}
}

// Countries handles GET /api/v3/countries.
//
// @Summary      List countries
// @Tags         geo
// @Produce      json
// @Success      200  {array}   domain.Country
// @Failure      500  {object}  map[string]any
// @Router       /api/v3/countries [get]
func (h *GeoHandler) Countries(c echo.Context) error {
	countries, err := h.provider.Countries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// Cities handles GET /api/v3/cities/:cityId. The path parameter is named
// cityId for wire compatibility with the original API but identifies a
// country.
//
// @Summary      List cities of a country
// @Tags         geo
// @Produce      json
// @Param        cityId  path      string  true  "Country identifier"
// @Success      200     {array}   domain.City
// @Failure      500     {object}  map[string]any
// @Router       /api/v3/cities/{cityId} [get]
func (h *GeoHandler) Cities(c echo.Context) error {
	cities, err := h.provider.Cities(c.Request().Context(), c.Param("cityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cities)
}
