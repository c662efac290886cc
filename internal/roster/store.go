// Package roster holds the in-session roster and the latest committed
// commute results. Nothing here survives process restart.
package roster

import (
	"sync"

	"office-commute-service/internal/domain"
)

// The committed output of one recompute generation, published atomically.
type ResultsSnapshot struct {
	Generation uint64
	Office     domain.OfficeLocation
	Results    []domain.CommuteResult
	Stats      domain.Statistics
	// Outage marks a generation whose every service call failed; the
	// result set is empty-but-valid, never stale data from a previous
	// office location.
	Outage bool
	// Committed is false until the first generation commits.
	Committed bool
}

// Store is the only mutable shared state besides the office location.
// Single writer per concern: the importer replaces the roster, the
// recompute engine commits results. Readers always receive copies.
type Store struct {
	mu        sync.RWMutex
	employees []domain.Employee
	snapshot  ResultsSnapshot
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceRoster swaps in a freshly imported roster and clears any
// previously committed results (they describe employees that no longer
// exist).
func (s *Store) ReplaceRoster(employees []domain.Employee) {
	cp := make([]domain.Employee, len(employees))
	copy(cp, employees)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = cp
	s.snapshot = ResultsSnapshot{}
}

// Employees returns a copy of the full roster, unresolved entries included.
func (s *Store) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]domain.Employee, len(s.employees))
	copy(cp, s.employees)
	return cp
}

// ResolvedEmployees returns the employees eligible for commute
// computation: those with a resolved home coordinate.
func (s *Store) ResolvedEmployees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if e.HomeResolved() {
			out = append(out, e)
		}
	}
	return out
}

// Commit publishes the result set of one generation together with its
// statistics. The engine serializes commits and performs the staleness
// check before calling.
func (s *Store) Commit(snap ResultsSnapshot) {
	cp := make([]domain.CommuteResult, len(snap.Results))
	copy(cp, snap.Results)
	snap.Results = cp
	snap.Committed = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
}

// Results returns the latest committed snapshot.
func (s *Store) Results() ResultsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	cp := make([]domain.CommuteResult, len(snap.Results))
	copy(cp, snap.Results)
	snap.Results = cp
	return snap
}
