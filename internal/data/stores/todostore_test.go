package stores

import (
	"context"
	"regexp"
	"testing"

	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/data/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *TodoStore {
	t.Helper()
	return NewTodoStore(seed.Todos())
}

func TestTodoStore_Create(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item := todo.Item{
		CaseID:      "1150122-08",
		Content:     "Call the family about the schedule change",
		Category:    todo.CategoryContact,
		CreatorName: "duty operator",
	}
	require.NoError(t, store.Create(ctx, &item))

	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{8}$`), item.ID)
	assert.Equal(t, todo.StatusPending, item.Status)
	assert.NotEmpty(t, item.CreatedAt)

	got, err := store.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestTodoStore_Create_InvalidCategory(t *testing.T) {
	store := newTestStore(t)
	err := store.Create(context.Background(), &todo.Item{
		CaseID:   "1150122-08",
		Content:  "x",
		Category: "urgent",
	})
	require.Error(t, err)
}

func TestTodoStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestTodoStore_List(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("all items newest first", func(t *testing.T) {
		items, err := store.List(ctx, todo.ListFilter{})
		require.NoError(t, err)
		require.Len(t, items, 6)
		for i := 1; i < len(items); i++ {
			assert.False(t, items[i-1].CreatedTime().Before(items[i].CreatedTime()),
				"items out of order at %d", i)
		}
	})

	t.Run("filter by case", func(t *testing.T) {
		items, err := store.List(ctx, todo.ListFilter{CaseID: "1150122-07"})
		require.NoError(t, err)
		assert.Len(t, items, 3)
		for _, item := range items {
			assert.Equal(t, "1150122-07", item.CaseID)
		}
	})

	t.Run("filter by status and category", func(t *testing.T) {
		items, err := store.List(ctx, todo.ListFilter{
			Status:   todo.StatusCompleted,
			Category: todo.CategoryBilling,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "t5", items[0].ID)
	})
}

func TestTodoStore_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item, err := store.ToggleStatus(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, item.Status)

	// Toggling twice restores the original state.
	item, err = store.ToggleStatus(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, todo.StatusPending, item.Status)

	_, err = store.ToggleStatus(ctx, "missing")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestTodoStore_UpdateContent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before, err := store.Get(ctx, "t2")
	require.NoError(t, err)

	after, err := store.UpdateContent(ctx, "t2", "  PCR certificate confirmed  ")
	require.NoError(t, err)
	assert.Equal(t, "PCR certificate confirmed", after.Content)

	// Only the content changes.
	after.Content = before.Content
	assert.Equal(t, before, after)

	_, err = store.UpdateContent(ctx, "missing", "x")
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestTodoStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Delete(ctx, "t3"))
	_, err := store.Get(ctx, "t3")
	assert.ErrorIs(t, err, todo.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "t3"), todo.ErrNotFound)

	items, err := store.List(ctx, todo.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestTodoStore_CountByStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	pending, err := store.CountByStatus(ctx, todo.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 4, pending)

	completed, err := store.CountByStatus(ctx, todo.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)
}
