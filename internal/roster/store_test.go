package roster

import (
	"testing"

	"office-commute-service/internal/domain"
)

func coord(lat, lng float64) *domain.Coordinate {
	return &domain.Coordinate{Lat: lat, Lng: lng}
}

func TestReplaceRosterClearsResults(t *testing.T) {
	s := NewStore()
	s.ReplaceRoster([]domain.Employee{
		{ID: 1, Name: "Ana", Home: coord(-33.9, 151.2)},
	})
	s.Commit(ResultsSnapshot{
		Generation: 1,
		Results:    []domain.CommuteResult{{EmployeeID: 1}},
	})

	if snap := s.Results(); !snap.Committed {
		t.Fatal("expected committed snapshot before replace")
	}

	s.ReplaceRoster([]domain.Employee{
		{ID: 2, Name: "Ben", Home: coord(-33.8, 151.1)},
	})

	snap := s.Results()
	if snap.Committed {
		t.Error("replace must clear committed results")
	}
	if len(snap.Results) != 0 {
		t.Errorf("expected no results after replace, got %d", len(snap.Results))
	}
	if got := s.Employees(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("unexpected roster after replace: %+v", got)
	}
}

func TestResolvedEmployeesFiltersUnresolved(t *testing.T) {
	s := NewStore()
	s.ReplaceRoster([]domain.Employee{
		{ID: 1, Home: coord(-33.9, 151.2)},
		{ID: 2, Home: nil},
		{ID: 3, Home: coord(-33.7, 151.0)},
	})

	got := s.ResolvedEmployees()
	if len(got) != 2 {
		t.Fatalf("expected 2 resolved employees, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("unexpected resolved set: %+v", got)
	}
}

func TestResultsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Commit(ResultsSnapshot{
		Generation: 3,
		Results: []domain.CommuteResult{
			{EmployeeID: 1},
			{EmployeeID: 2},
		},
	})

	first := s.Results()
	first.Results[0].EmployeeID = 99

	second := s.Results()
	if second.Results[0].EmployeeID != 1 {
		t.Error("mutating a returned snapshot must not affect the store")
	}
}

func TestEmployeesReturnsCopy(t *testing.T) {
	s := NewStore()
	s.ReplaceRoster([]domain.Employee{{ID: 1, Name: "Ana"}})

	got := s.Employees()
	got[0].Name = "changed"

	if s.Employees()[0].Name != "Ana" {
		t.Error("mutating a returned roster must not affect the store")
	}
}
