package stores

import (
	"context"
	"sync"

	"github.com/careops/dispatch/internal/core/casefile"
)

// CaseStore implements casefile.Store over an in-memory slice. Cases arrive
// from intake and are read-only inside the dashboard.
type CaseStore struct {
	mu    sync.RWMutex
	cases []casefile.Case
}

var _ casefile.Store = (*CaseStore)(nil)

// NewCaseStore creates a store pre-loaded with the given cases.
func NewCaseStore(cases []casefile.Case) *CaseStore {
	s := &CaseStore{cases: make([]casefile.Case, len(cases))}
	copy(s.cases, cases)
	return s
}

// List returns all cases in intake order.
func (s *CaseStore) List(_ context.Context) ([]casefile.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]casefile.Case, len(s.cases))
	copy(out, s.cases)
	return out, nil
}

// Get returns a single case by ID.
func (s *CaseStore) Get(_ context.Context, id string) (casefile.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return casefile.Case{}, casefile.ErrNotFound
}
