package services

import (
	"errors"
	"testing"

	"office-commute-service/internal/domain"
)

func TestOptimalLocationIsCentroid(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Home: &domain.Coordinate{Lat: -33.80, Lng: 151.20}},
		{ID: 2, Home: &domain.Coordinate{Lat: -33.90, Lng: 151.30}},
	}

	got, err := OptimalLocation(employees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Coordinate{Lat: -33.85, Lng: 151.25}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestOptimalLocationIgnoresUnresolved(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Home: &domain.Coordinate{Lat: -33.80, Lng: 151.20}},
		{ID: 2}, // unresolved home
	}

	got, err := OptimalLocation(employees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Coordinate{Lat: -33.80, Lng: 151.20}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestOptimalLocationEmptySet(t *testing.T) {
	_, err := OptimalLocation([]domain.Employee{{ID: 1}, {ID: 2}})
	if !errors.Is(err, domain.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates, got %v", err)
	}

	_, err = OptimalLocation(nil)
	if !errors.Is(err, domain.ErrNoCoordinates) {
		t.Fatalf("expected ErrNoCoordinates for nil input, got %v", err)
	}
}
