package services

import (
	"slices"

	"office-commute-service/internal/domain"
)

// Summarize reduces a committed result set into summary statistics.
// Averages count only legs with a resolved duration: an unresolved leg
// is excluded from both numerator and denominator, never treated as zero.
// Pure function.
func Summarize(results []domain.CommuteResult) domain.Statistics {
	stats := domain.Statistics{EmployeeCount: len(results)}

	var drivingSum, transitSum float64
	var drivingN, transitN int

	for _, r := range results {
		if d := r.MainOffice.Driving.DurationMinutes; d != nil {
			drivingSum += *d
			drivingN++
		}
		if t := r.MainOffice.Transit.DurationMinutes; t != nil {
			transitSum += *t
			transitN++
		}
	}

	if drivingN > 0 {
		avg := drivingSum / float64(drivingN)
		stats.AverageDrivingMinutes = &avg
	}
	if transitN > 0 {
		avg := transitSum / float64(transitN)
		stats.AverageTransitMinutes = &avg
	}

	return stats
}

// Rank returns a copy of the results sorted for display: descending
// main-office driving duration, unresolved legs last, employee ID as the
// deterministic tie-breaker. Pure function.
func Rank(results []domain.CommuteResult) []domain.CommuteResult {
	out := slices.Clone(results)

	slices.SortFunc(out, func(a, b domain.CommuteResult) int {
		da := a.MainOffice.Driving.DurationMinutes
		db := b.MainOffice.Driving.DurationMinutes

		switch {
		case da != nil && db != nil:
			if *da > *db {
				return -1
			}
			if *da < *db {
				return 1
			}
		case da != nil:
			return -1
		case db != nil:
			return 1
		}

		if a.EmployeeID < b.EmployeeID {
			return -1
		}
		if a.EmployeeID > b.EmployeeID {
			return 1
		}
		return 0
	})

	return out
}
