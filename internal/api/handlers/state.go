package handlers

import (
	"sync"

	"office-commute-service/internal/domain"
)

// OfficeState is the presentation layer's copy of the current office
// location: single writer (the handlers), passed by value into the
// recompute engine on every trigger.
type OfficeState struct {
	mu      sync.RWMutex
	current domain.OfficeLocation
}

func NewOfficeState(initial domain.OfficeLocation) *OfficeState {
	return &OfficeState{current: initial}
}

func (s *OfficeState) Current() domain.OfficeLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *OfficeState) Set(loc domain.OfficeLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = loc
}
