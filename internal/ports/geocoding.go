package ports

import (
	"context"

	"office-commute-service/internal/domain"
)

// A single geocoding candidate. Confidence is provider-defined in [0, 1];
// results arrive ordered best-first and the core keeps the first hit.
type GeocodeHit struct {
	Coordinate domain.Coordinate
	Confidence float64
}

// Port: a boundary for resolving free-text addresses to coordinates.
type GeocodingService interface {
	// Return candidate coordinates for the query text, best first.
	// An empty slice with a nil error means "address not found".
	Search(ctx context.Context, text string) ([]GeocodeHit, error)
}
