package ports

import (
	"context"

	"office-commute-service/internal/domain"
)

// Distance and travel duration for one driving route.
type DrivingRoute struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Port: retrieve driving routes between two coordinates. Routes arrive
// best-first; the core uses the first one.
type DrivingRouter interface {
	Routes(ctx context.Context, origin, destination domain.Coordinate) ([]DrivingRoute, error)
}

// One step of a transit leg. Line and stop names are populated only for
// steps whose TravelMode is transit (walking steps carry no line).
type TransitStep struct {
	TravelMode      string
	Line            string
	DepartureStop   string
	ArrivalStop     string
	DistanceMeters  float64
	DurationSeconds float64
}

type TransitRouteLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
	Steps           []TransitStep
}

type Itinerary struct {
	Legs []TransitRouteLeg
}

// Port: retrieve transit itineraries between two coordinates. A reachable
// service that knows no connection returns zero itineraries, not an error.
type TransitRouter interface {
	Itineraries(ctx context.Context, origin, destination domain.Coordinate) ([]Itinerary, error)
}
