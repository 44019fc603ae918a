package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/config"
	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/careops/dispatch/internal/core/todo"
	"github.com/rs/zerolog"
)

// ErrEmptyContent is returned when a create or edit submits whitespace-only
// content.
var ErrEmptyContent = errors.New("todo content is empty")

// TodoService wraps todo.Store with content normalization, operator
// attribution, and event publishing.
type TodoService struct {
	store todo.Store
	cases casefile.Store
	cfg   *config.Config
	bus   *eventbus.EventBus
	log   zerolog.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewTodoService creates a new TodoService.
func NewTodoService(store todo.Store, cases casefile.Store, cfg *config.Config, bus *eventbus.EventBus, log zerolog.Logger) *TodoService {
	return &TodoService{
		store: store,
		cases: cases,
		cfg:   cfg,
		bus:   bus,
		log:   log.With().Str("component", "todo-service").Logger(),
		now:   time.Now,
	}
}

// Create adds a new item for the given case. Content is trimmed; whitespace-only
// content is rejected. An empty category falls back to the configured default,
// and the creator is stamped with the configured operator name. dueDate is
// optional and must be a calendar date when set.
func (s *TodoService) Create(ctx context.Context, caseID, content string, category todo.Category, dueDate string) (todo.Item, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return todo.Item{}, ErrEmptyContent
	}
	if category == "" {
		category = s.cfg.DefaultCategory
	}
	if dueDate != "" {
		if _, err := time.ParseInLocation(todo.DateLayout, dueDate, time.Local); err != nil {
			return todo.Item{}, fmt.Errorf("bad due date %q: expected %s", dueDate, todo.DateLayout)
		}
	}

	item := todo.Item{
		CaseID:      caseID,
		Content:     content,
		Category:    category,
		Status:      todo.StatusPending,
		CreatedAt:   s.now().Format(todo.TimeLayout),
		CreatorName: s.cfg.Operator,
		DueDate:     dueDate,
	}
	if err := s.store.Create(ctx, &item); err != nil {
		return todo.Item{}, fmt.Errorf("create todo: %w", err)
	}

	s.log.Debug().Str("id", item.ID).Str("case", caseID).Msg("todo created")
	s.bus.PublishTodoCreated(eventbus.TodoCreatedPayload{Item: &item})
	return item, nil
}

// Toggle flips an item between pending and completed.
func (s *TodoService) Toggle(ctx context.Context, id string) (todo.Item, error) {
	item, err := s.store.ToggleStatus(ctx, id)
	if err != nil {
		return todo.Item{}, fmt.Errorf("toggle todo: %w", err)
	}

	s.bus.PublishTodoToggled(eventbus.TodoToggledPayload{Item: &item})
	return item, nil
}

// Edit replaces an item's content. Whitespace-only content leaves the item
// untouched so an accidental clear in the editor never destroys a note.
func (s *TodoService) Edit(ctx context.Context, id, content string) (todo.Item, error) {
	if strings.TrimSpace(content) == "" {
		item, err := s.store.Get(ctx, id)
		if err != nil {
			return todo.Item{}, fmt.Errorf("edit todo: %w", err)
		}
		return item, nil
	}

	item, err := s.store.UpdateContent(ctx, id, content)
	if err != nil {
		return todo.Item{}, fmt.Errorf("edit todo: %w", err)
	}

	s.bus.PublishTodoEdited(eventbus.TodoEditedPayload{Item: &item})
	return item, nil
}

// Delete removes an item.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.bus.PublishTodoDeleted(eventbus.TodoDeletedPayload{ItemID: id})
	return nil
}

// Get returns a single item by ID.
func (s *TodoService) Get(ctx context.Context, id string) (todo.Item, error) {
	return s.store.Get(ctx, id)
}

// List returns items matching the filter, newest first.
func (s *TodoService) List(ctx context.Context, filter todo.ListFilter) ([]todo.Item, error) {
	return s.store.List(ctx, filter)
}

// ForCase returns the full timeline for one case, newest first.
func (s *TodoService) ForCase(ctx context.Context, caseID string) ([]todo.Item, error) {
	return s.store.List(ctx, todo.ListFilter{CaseID: caseID})
}

// Triage buckets every item into due, logs, and backlog for the given filter
// and reference day.
func (s *TodoService) Triage(ctx context.Context, filter todo.Filter, today time.Time) (todo.Buckets, error) {
	items, err := s.store.List(ctx, todo.ListFilter{})
	if err != nil {
		return todo.Buckets{}, fmt.Errorf("list todos for triage: %w", err)
	}
	cases, err := s.cases.List(ctx)
	if err != nil {
		return todo.Buckets{}, fmt.Errorf("list cases for triage: %w", err)
	}
	return todo.Triage(items, cases, filter, today), nil
}

// Stats returns the pending/completed/urgent counts across all items.
func (s *TodoService) Stats(ctx context.Context) (todo.Stats, error) {
	items, err := s.store.List(ctx, todo.ListFilter{})
	if err != nil {
		return todo.Stats{}, fmt.Errorf("list todos for stats: %w", err)
	}
	return todo.Summarize(items), nil
}
