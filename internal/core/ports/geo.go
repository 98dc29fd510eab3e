package ports

import (
	"context"

	"github.com/eventservice/user-directory/internal/core/domain"
)

// GeoProvider is the boundary to the external country/city lookup service.
// Implementations remap every failure to domain.ErrUpstreamUnavailable.
type GeoProvider interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	Cities(ctx context.Context, countryID string) ([]domain.City, error)
}
