package services

import (
	"office-commute-service/internal/domain"
)

// OptimalLocation suggests an office coordinate as the arithmetic mean of
// every resolved employee home coordinate. This is a centroid
// approximation, not a commute-minimizing solver. Employees without a
// resolved home are ignored; an empty set after filtering fails with
// ErrNoCoordinates so callers surface it instead of defaulting silently.
func OptimalLocation(employees []domain.Employee) (domain.Coordinate, error) {
	var latSum, lngSum float64
	n := 0

	for _, e := range employees {
		if !e.HomeResolved() {
			continue
		}
		latSum += e.Home.Lat
		lngSum += e.Home.Lng
		n++
	}

	if n == 0 {
		return domain.Coordinate{}, domain.ErrNoCoordinates
	}

	return domain.Coordinate{
		Lat: latSum / float64(n),
		Lng: lngSum / float64(n),
	}, nil
}
