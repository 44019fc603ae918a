// Package stores provides in-memory implementations of the domain store
// interfaces. The dashboard runs against a fixed working set per session, so
// the stores hold everything behind a mutex and skip persistence entirely.
package stores

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/pkg/randid"
)

// TodoStore implements todo.Store over an in-memory slice.
type TodoStore struct {
	mu    sync.RWMutex
	items []todo.Item
}

var _ todo.Store = (*TodoStore)(nil)

// NewTodoStore creates a store pre-loaded with the given items.
func NewTodoStore(items []todo.Item) *TodoStore {
	s := &TodoStore{items: make([]todo.Item, len(items))}
	copy(s.items, items)
	return s
}

// Create inserts a new item at the head of the collection.
// Generates an ID and stamps CreatedAt (minute precision) if not set.
func (s *TodoStore) Create(_ context.Context, item *todo.Item) error {
	if item.ID == "" {
		item.ID = randid.Generate(8)
	}
	if item.Status == "" {
		item.Status = todo.StatusPending
	}
	if item.CreatedAt == "" {
		item.CreatedAt = time.Now().Format(todo.TimeLayout)
	}
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]todo.Item{*item}, s.items...)
	return nil
}

// Get returns a single item by ID.
func (s *TodoStore) Get(_ context.Context, id string) (todo.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return todo.Item{}, todo.ErrNotFound
}

// List returns items matching the filter, ordered by CreatedAt descending.
func (s *TodoStore) List(_ context.Context, filter todo.ListFilter) ([]todo.Item, error) {
	s.mu.RLock()
	out := make([]todo.Item, 0, len(s.items))
	for _, item := range s.items {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.CaseID != "" && item.CaseID != filter.CaseID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		out = append(out, item)
	}
	s.mu.RUnlock()

	todo.SortNewestFirst(out)
	return out, nil
}

// ToggleStatus flips an item between pending and completed.
func (s *TodoStore) ToggleStatus(_ context.Context, id string) (todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Status == todo.StatusPending {
			s.items[i].Status = todo.StatusCompleted
		} else {
			s.items[i].Status = todo.StatusPending
		}
		return s.items[i], nil
	}
	return todo.Item{}, todo.ErrNotFound
}

// UpdateContent replaces an item's content. Everything else is immutable
// after creation.
func (s *TodoStore) UpdateContent(_ context.Context, id string, content string) (todo.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Content = strings.TrimSpace(content)
		return s.items[i], nil
	}
	return todo.Item{}, todo.ErrNotFound
}

// Delete removes an item.
func (s *TodoStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return todo.ErrNotFound
}

// CountByStatus returns the number of items with the given status.
func (s *TodoStore) CountByStatus(_ context.Context, status todo.Status) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, item := range s.items {
		if item.Status == status {
			n++
		}
	}
	return n, nil
}
