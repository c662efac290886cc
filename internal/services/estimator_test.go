package services

import (
	"context"
	"errors"
	"testing"

	"office-commute-service/internal/adapters/travel"
	"office-commute-service/internal/domain"
	"office-commute-service/internal/ports"
)

var (
	testHome   = domain.Coordinate{Lat: -33.90, Lng: 151.18}
	testOffice = domain.Coordinate{Lat: -33.8688, Lng: 151.2093}
)

func TestEstimateDriving(t *testing.T) {
	driving := &travel.MockDrivingRouter{
		Pairs: map[string]ports.DrivingRoute{
			travel.PairKey(testHome, testOffice): {DistanceMeters: 9000, DurationSeconds: 1080},
		},
	}
	est := NewEstimator(driving, &travel.MockTransitRouter{}, nil)

	leg := est.Estimate(context.Background(), testHome, testOffice, domain.ModeDriving)

	if !leg.Resolved() {
		t.Fatal("expected resolved leg")
	}
	if *leg.DurationMinutes != 18 {
		t.Fatalf("duration = %v, want 18", *leg.DurationMinutes)
	}
	if *leg.DistanceKm != 9 {
		t.Fatalf("distance = %v, want 9", *leg.DistanceKm)
	}
	if leg.TransitSummary != "" {
		t.Fatalf("driving leg carries transit summary %q", leg.TransitSummary)
	}
}

func TestEstimateDrivingNoRoute(t *testing.T) {
	est := NewEstimator(&travel.MockDrivingRouter{}, &travel.MockTransitRouter{}, nil)

	leg := est.Estimate(context.Background(), testHome, testOffice, domain.ModeDriving)

	if leg.Resolved() {
		t.Fatal("expected unresolved leg for missing route")
	}
	if leg.DurationMinutes != nil || leg.DistanceKm != nil {
		t.Fatal("unresolved leg must carry nil metrics, not zero")
	}
}

func TestEstimateDrivingServiceError(t *testing.T) {
	driving := &travel.MockDrivingRouter{Err: errors.New("boom")}
	est := NewEstimator(driving, &travel.MockTransitRouter{}, nil)

	leg := est.Estimate(context.Background(), testHome, testOffice, domain.ModeDriving)

	if leg.Resolved() {
		t.Fatal("expected unresolved leg on service error")
	}
}

func TestEstimateTransitSummary(t *testing.T) {
	transit := &travel.MockTransitRouter{
		Pairs: map[string][]ports.Itinerary{
			travel.PairKey(testHome, testOffice): {
				{
					Legs: []ports.TransitRouteLeg{
						{
							DistanceMeters:  12000,
							DurationSeconds: 2100,
							Steps: []ports.TransitStep{
								{TravelMode: "WALKING"},
								{TravelMode: "TRANSIT", Line: "T2", DepartureStop: "Newtown", ArrivalStop: "Central"},
								{TravelMode: "WALKING"},
								{TravelMode: "TRANSIT", Line: "333", DepartureStop: "Central", ArrivalStop: "Wynyard"},
							},
						},
					},
				},
			},
		},
	}
	est := NewEstimator(&travel.MockDrivingRouter{}, transit, nil)

	leg := est.Estimate(context.Background(), testHome, testOffice, domain.ModeTransit)

	if !leg.Resolved() {
		t.Fatal("expected resolved transit leg")
	}
	if *leg.DurationMinutes != 35 {
		t.Fatalf("duration = %v, want 35", *leg.DurationMinutes)
	}
	want := "T2 (Newtown → Central), 333 (Central → Wynyard)"
	if leg.TransitSummary != want {
		t.Fatalf("summary = %q, want %q", leg.TransitSummary, want)
	}
}

func TestEstimateTransitZeroItineraries(t *testing.T) {
	est := NewEstimator(&travel.MockDrivingRouter{}, &travel.MockTransitRouter{}, nil)

	leg := est.Estimate(context.Background(), testHome, testOffice, domain.ModeTransit)

	if leg.Resolved() {
		t.Fatal("expected unresolved leg for zero itineraries")
	}
	if leg.TransitSummary != "" {
		t.Fatalf("expected empty summary, got %q", leg.TransitSummary)
	}
}

// In-memory LegCache for estimator tests.
type mapLegCache struct {
	m map[string]ports.LegResult
}

func (c *mapLegCache) key(o, d domain.Coordinate, m domain.Mode) string {
	return travel.PairKey(o, d) + "|" + string(m)
}

func (c *mapLegCache) Get(ctx context.Context, o, d domain.Coordinate, m domain.Mode) (ports.LegResult, bool, error) {
	r, ok := c.m[c.key(o, d, m)]
	return r, ok, nil
}

func (c *mapLegCache) Put(ctx context.Context, o, d domain.Coordinate, m domain.Mode, r ports.LegResult) error {
	c.m[c.key(o, d, m)] = r
	return nil
}

func TestEstimateDrivingUsesLegCache(t *testing.T) {
	cache := &mapLegCache{m: map[string]ports.LegResult{}}
	driving := &travel.MockDrivingRouter{
		Pairs: map[string]ports.DrivingRoute{
			travel.PairKey(testHome, testOffice): {DistanceMeters: 6000, DurationSeconds: 600},
		},
	}
	est := NewEstimator(driving, &travel.MockTransitRouter{}, cache)

	first := est.Estimate(context.Background(), testHome, testOffice, domain.ModeDriving)
	if !first.Resolved() {
		t.Fatal("expected resolved leg")
	}

	// Second estimate must come from the cache, not the router.
	driving.Err = errors.New("router must not be called")
	second := est.Estimate(context.Background(), testHome, testOffice, domain.ModeDriving)

	if !second.Resolved() {
		t.Fatal("expected cached leg")
	}
	if *second.DurationMinutes != *first.DurationMinutes || *second.DistanceKm != *first.DistanceKm {
		t.Fatalf("cached leg differs: %+v vs %+v", second, first)
	}
}
