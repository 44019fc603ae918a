package dispatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/config"
	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/rs/zerolog"
)

// CaseService exposes the read-only case roster with pinned ordering.
type CaseService struct {
	store casefile.Store
	cfg   *config.Config
	bus   *eventbus.EventBus
	log   zerolog.Logger
}

// NewCaseService creates a new CaseService.
func NewCaseService(store casefile.Store, cfg *config.Config, bus *eventbus.EventBus, log zerolog.Logger) *CaseService {
	return &CaseService{
		store: store,
		cfg:   cfg,
		bus:   bus,
		log:   log.With().Str("component", "case-service").Logger(),
	}
}

// List returns all cases, pinned ones first, otherwise in intake order.
func (s *CaseService) List(ctx context.Context) ([]casefile.Case, error) {
	cases, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return s.cfg.IsPinned(cases[i].ID) && !s.cfg.IsPinned(cases[j].ID)
	})
	return cases, nil
}

// ListByStatus returns cases with the given status, pinned first.
func (s *CaseService) ListByStatus(ctx context.Context, status string) ([]casefile.Case, error) {
	cases, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return cases, nil
	}

	out := cases[:0]
	for _, c := range cases {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns a single case by ID.
func (s *CaseService) Get(ctx context.Context, id string) (casefile.Case, error) {
	return s.store.Get(ctx, id)
}

// Open returns a case and announces that its detail panel is opening.
func (s *CaseService) Open(ctx context.Context, id string) (casefile.Case, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return casefile.Case{}, fmt.Errorf("open case: %w", err)
	}

	s.log.Debug().Str("case", c.ID).Msg("case opened")
	s.bus.PublishCaseOpened(eventbus.CaseOpenedPayload{Case: &c})
	return c, nil
}

// IsPinned reports whether the case matches a configured pin pattern.
func (s *CaseService) IsPinned(id string) bool {
	return s.cfg.IsPinned(id)
}
