package todo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a to-do item does not exist.
var ErrNotFound = errors.New("todo item not found")

// ListFilter controls which items are returned by List.
type ListFilter struct {
	Status   Status   // empty means all statuses
	CaseID   string   // empty means all cases
	Category Category // empty means all categories
}

// Store defines the interface for to-do item access. The backing collection
// is in-memory for this system; the interface keeps the seam where a real
// persistence service would slot in.
type Store interface {
	// Create inserts a new item at the head of the collection (newest first).
	// The store populates ID, Status, and CreatedAt if not already set.
	Create(ctx context.Context, item *Item) error

	// Get returns a single item by ID.
	// Returns ErrNotFound if the item does not exist.
	Get(ctx context.Context, id string) (Item, error)

	// List returns items matching the filter, ordered by CreatedAt descending.
	List(ctx context.Context, filter ListFilter) ([]Item, error)

	// ToggleStatus flips an item between pending and completed.
	// Returns ErrNotFound if the item does not exist.
	ToggleStatus(ctx context.Context, id string) (Item, error)

	// UpdateContent replaces an item's content.
	// Returns ErrNotFound if the item does not exist.
	UpdateContent(ctx context.Context, id string, content string) (Item, error)

	// Delete removes an item.
	// Returns ErrNotFound if the item does not exist.
	Delete(ctx context.Context, id string) error

	// CountByStatus returns the number of items with the given status.
	CountByStatus(ctx context.Context, status Status) (int, error)
}
