package services

import (
	"context"
	"fmt"
	"strings"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/ports"
)

// Estimator resolves one (origin, destination, mode) triple to a commute
// leg. Service failures, timeouts, and empty responses all degrade into
// an unresolved leg; they are "no data for this leg", never a pipeline
// failure.
type Estimator struct {
	driving ports.DrivingRouter
	transit ports.TransitRouter
	legs    ports.LegCache
}

// NewEstimator builds an Estimator. legs may be nil to disable the
// driving-leg cache (transit legs are not cached: itinerary summaries are
// schedule-dependent).
func NewEstimator(driving ports.DrivingRouter, transit ports.TransitRouter, legs ports.LegCache) *Estimator {
	return &Estimator{driving: driving, transit: transit, legs: legs}
}

// Estimate computes one commute leg. The returned leg is unresolved on
// any failure; the error is absorbed and logged here.
func (e *Estimator) Estimate(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.Mode,
) domain.CommuteLeg {
	switch mode {
	case domain.ModeDriving:
		return e.estimateDriving(ctx, origin, destination)
	case domain.ModeTransit:
		return e.estimateTransit(ctx, origin, destination)
	}

	obs.Event("leg_failed", "mode", mode, "err", "unknown mode")
	return domain.CommuteLeg{Mode: mode}
}

func (e *Estimator) estimateDriving(ctx context.Context, origin, destination domain.Coordinate) domain.CommuteLeg {
	leg := domain.CommuteLeg{Mode: domain.ModeDriving}

	if e.legs != nil {
		if r, ok, err := e.legs.Get(ctx, origin, destination, domain.ModeDriving); err != nil {
			obs.Event("leg_cache_error", "err", err)
		} else if ok {
			fillMetrics(&leg, r.DurationSeconds, r.DistanceMeters)
			return leg
		}
	}

	routes, err := e.driving.Routes(ctx, origin, destination)
	if err != nil {
		obs.Event("leg_failed", "mode", domain.ModeDriving, "err", err)
		return leg
	}
	if len(routes) == 0 {
		obs.Event("leg_failed", "mode", domain.ModeDriving, "err", domain.ErrNoRoute)
		return leg
	}

	// Best route first.
	best := routes[0]
	fillMetrics(&leg, best.DurationSeconds, best.DistanceMeters)

	if e.legs != nil {
		put := ports.LegResult{DistanceMeters: best.DistanceMeters, DurationSeconds: best.DurationSeconds}
		if err := e.legs.Put(ctx, origin, destination, domain.ModeDriving, put); err != nil {
			obs.Event("leg_cache_error", "err", err)
		}
	}

	obs.Event("leg_resolved", "mode", domain.ModeDriving, "minutes", *leg.DurationMinutes)
	return leg
}

func (e *Estimator) estimateTransit(ctx context.Context, origin, destination domain.Coordinate) domain.CommuteLeg {
	leg := domain.CommuteLeg{Mode: domain.ModeTransit}

	itineraries, err := e.transit.Itineraries(ctx, origin, destination)
	if err != nil {
		obs.Event("leg_failed", "mode", domain.ModeTransit, "err", err)
		return leg
	}
	if len(itineraries) == 0 || len(itineraries[0].Legs) == 0 {
		obs.Event("leg_failed", "mode", domain.ModeTransit, "err", domain.ErrNoRoute)
		return leg
	}

	first := itineraries[0]

	// Duration and distance come from the first leg of the first itinerary.
	fillMetrics(&leg, first.Legs[0].DurationSeconds, first.Legs[0].DistanceMeters)
	leg.TransitSummary = transitSummary(first)

	obs.Event("leg_resolved", "mode", domain.ModeTransit, "minutes", *leg.DurationMinutes)
	return leg
}

// transitSummary concatenates every transit step of the itinerary as
// "<line> (<departure stop> → <arrival stop>)", comma-joined. Steps with
// no transit line (walking segments) are skipped.
func transitSummary(it ports.Itinerary) string {
	parts := make([]string, 0, 4)
	for _, l := range it.Legs {
		for _, s := range l.Steps {
			if s.Line == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s (%s → %s)", s.Line, s.DepartureStop, s.ArrivalStop))
		}
	}
	return strings.Join(parts, ", ")
}

func fillMetrics(leg *domain.CommuteLeg, durationSeconds, distanceMeters float64) {
	minutes := durationSeconds / 60
	km := distanceMeters / 1000
	leg.DurationMinutes = &minutes
	leg.DistanceKm = &km
}
