package travel

import (
	"context"
	"fmt"
	"sync"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/ports"
)

// PairKey builds the lookup key the mock routers use for a coordinate pair.
func PairKey(origin, destination domain.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f", origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}

// MockGeocoder serves canned hits per query text. Safe for concurrent use.
type MockGeocoder struct {
	Hits map[string][]ports.GeocodeHit
	Err  error

	mu    sync.Mutex
	calls int
}

func (m *MockGeocoder) Search(ctx context.Context, text string) ([]ports.GeocodeHit, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Hits[normalize(text)], nil
}

// Calls reports the number of Search calls observed, for once-per-address
// assertions.
func (m *MockGeocoder) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockDrivingRouter serves canned routes per coordinate pair. Hook, when
// set, runs before each lookup so tests can stall or reorder completions.
// An unknown pair yields zero routes, mirroring a reachable service with
// no connection.
type MockDrivingRouter struct {
	Pairs map[string]ports.DrivingRoute
	Err   error
	Hook  func(origin, destination domain.Coordinate)
}

func (m *MockDrivingRouter) Routes(ctx context.Context, origin, destination domain.Coordinate) ([]ports.DrivingRoute, error) {
	if m.Hook != nil {
		m.Hook(origin, destination)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.Pairs[PairKey(origin, destination)]
	if !ok {
		return []ports.DrivingRoute{}, nil
	}
	return []ports.DrivingRoute{r}, nil
}

// MockTransitRouter serves canned itineraries per coordinate pair.
type MockTransitRouter struct {
	Pairs map[string][]ports.Itinerary
	Err   error
	Hook  func(origin, destination domain.Coordinate)
}

func (m *MockTransitRouter) Itineraries(ctx context.Context, origin, destination domain.Coordinate) ([]ports.Itinerary, error) {
	if m.Hook != nil {
		m.Hook(origin, destination)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Pairs[PairKey(origin, destination)], nil
}
