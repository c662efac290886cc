package ports

import (
	"context"

	"office-commute-service/internal/domain"
)

// Port: persistent address -> coordinate cache. Guarantees each distinct
// address is geocoded at most once per roster import.
type GeocodeCache interface {
	// Return the cached coordinate and whether the address was present.
	Get(ctx context.Context, address string) (domain.Coordinate, bool, error)
	Put(ctx context.Context, address string, c domain.Coordinate) error
}

// Raw route metrics as returned by the routing service.
type LegResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Port: persistent (origin, destination, mode) -> metrics cache for
// route estimates.
type LegCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinate, mode domain.Mode) (LegResult, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinate, mode domain.Mode, r LegResult) error
}
