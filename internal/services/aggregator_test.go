package services

import (
	"testing"

	"office-commute-service/internal/domain"
)

func minutes(v float64) *float64 { return &v }

func resultWithDriving(id int, drivingMinutes *float64, transitMinutes *float64) domain.CommuteResult {
	return domain.CommuteResult{
		EmployeeID: id,
		MainOffice: domain.CommutePair{
			Driving: domain.CommuteLeg{Mode: domain.ModeDriving, DurationMinutes: drivingMinutes},
			Transit: domain.CommuteLeg{Mode: domain.ModeTransit, DurationMinutes: transitMinutes},
		},
	}
}

func TestSummarizeExcludesUnresolvedLegs(t *testing.T) {
	results := []domain.CommuteResult{
		resultWithDriving(1, minutes(10), minutes(30)),
		resultWithDriving(2, minutes(20), nil),
		resultWithDriving(3, nil, nil),
	}

	stats := Summarize(results)

	if stats.EmployeeCount != 3 {
		t.Fatalf("employee count = %d, want 3", stats.EmployeeCount)
	}
	if stats.AverageDrivingMinutes == nil || *stats.AverageDrivingMinutes != 15 {
		t.Fatalf("average driving = %v, want 15", stats.AverageDrivingMinutes)
	}
	// Only one resolved transit leg: the average is over n=1, not n=3.
	if stats.AverageTransitMinutes == nil || *stats.AverageTransitMinutes != 30 {
		t.Fatalf("average transit = %v, want 30", stats.AverageTransitMinutes)
	}
}

func TestSummarizeAllUnresolved(t *testing.T) {
	results := []domain.CommuteResult{
		resultWithDriving(1, nil, nil),
		resultWithDriving(2, nil, nil),
	}

	stats := Summarize(results)

	if stats.AverageDrivingMinutes != nil || stats.AverageTransitMinutes != nil {
		t.Fatalf("expected nil averages, got %+v", stats)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	if stats.EmployeeCount != 0 || stats.AverageDrivingMinutes != nil || stats.AverageTransitMinutes != nil {
		t.Fatalf("unexpected stats for empty input: %+v", stats)
	}
}

func TestRankDescendingUnresolvedLast(t *testing.T) {
	results := []domain.CommuteResult{
		resultWithDriving(1, minutes(10), nil),
		resultWithDriving(2, nil, nil),
		resultWithDriving(3, minutes(45), nil),
		resultWithDriving(4, minutes(25), nil),
	}

	ranked := Rank(results)

	wantOrder := []int{3, 4, 1, 2}
	for i, want := range wantOrder {
		if ranked[i].EmployeeID != want {
			t.Fatalf("position %d: employee %d, want %d", i, ranked[i].EmployeeID, want)
		}
	}

	// Input order untouched.
	if results[0].EmployeeID != 1 {
		t.Fatal("Rank mutated its input")
	}
}

func TestRankTieBreaksByEmployeeID(t *testing.T) {
	results := []domain.CommuteResult{
		resultWithDriving(7, minutes(10), nil),
		resultWithDriving(2, minutes(10), nil),
		resultWithDriving(5, nil, nil),
		resultWithDriving(3, nil, nil),
	}

	ranked := Rank(results)

	wantOrder := []int{2, 7, 3, 5}
	for i, want := range wantOrder {
		if ranked[i].EmployeeID != want {
			t.Fatalf("position %d: employee %d, want %d", i, ranked[i].EmployeeID, want)
		}
	}
}
