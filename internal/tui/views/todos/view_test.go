package todos

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/dispatch/internal/core/config"
	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/data/seed"
	"github.com/careops/dispatch/internal/data/stores"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
)

// seedDay is the day most seed items were created on.
var seedDay = time.Date(2024, 1, 22, 10, 0, 0, 0, time.Local)

func newTestView(t *testing.T) View {
	t.Helper()

	cfg := config.DefaultConfig()
	app := dispatch.NewApp(
		stores.NewTodoStore(seed.Todos()),
		stores.NewCaseStore(seed.Cases()),
		&cfg,
		eventbus.New(8),
		zerolog.Nop(),
	)

	v, err := New(app)
	require.NoError(t, err)

	// Pin the clock to the seed data's day.
	v.now = func() time.Time { return seedDay }
	v.filter.LogDate = seedDay.Format(todo.DateLayout)
	require.NoError(t, v.reload())
	v.SetSize(100, 36)
	return v
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ids(items []todo.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestView_InitialBuckets(t *testing.T) {
	v := newTestView(t)

	assert.Equal(t, []string{"t6"}, ids(v.buckets.Due))
	assert.Equal(t, []string{"t6", "t4", "t3", "t1"}, ids(v.buckets.Logs))
	assert.Equal(t, []string{"t4", "t3", "t1"}, ids(v.buckets.Backlog))
	assert.Len(t, v.rows, 8, "rows flatten every bucket appearance")
}

func TestView_CategoryFilterKeys(t *testing.T) {
	v := newTestView(t)

	// "1" toggles the first category (contact).
	v, _ = v.Update(keyRunes("1"))
	require.Equal(t, []todo.Category{todo.CategoryContact}, v.filter.Categories)
	assert.Equal(t, []string{"t1"}, ids(v.buckets.Logs))
	assert.Equal(t, []string{"t6"}, ids(v.buckets.Due), "due ignores filters")

	// Multi-select: add record.
	v, _ = v.Update(keyRunes("2"))
	assert.Equal(t, []string{"t4", "t1"}, ids(v.buckets.Logs))

	// Toggling contact off again narrows to record only.
	v, _ = v.Update(keyRunes("1"))
	assert.Equal(t, []string{"t4"}, ids(v.buckets.Logs))

	// "c" clears every filter.
	v, _ = v.Update(keyRunes("c"))
	assert.Empty(t, v.filter.Categories)
	assert.Len(t, v.buckets.Logs, 4)
}

func TestView_SearchNarrowsWhileTyping(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(keyRunes("/"))
	require.True(t, v.HasEditorFocus())

	for _, r := range "deposit" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "deposit", v.filter.Search)
	assert.Empty(t, v.buckets.Logs, "t5 was created on another day")
	assert.Empty(t, v.buckets.Backlog)
	assert.Equal(t, []string{"t6"}, ids(v.buckets.Due), "due ignores search")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.HasEditorFocus())
}

func TestView_SearchByPatientName(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(keyRunes("/"))
	for _, r := range "CHEN" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Chen M. is the patient on case 1150122-07.
	assert.Equal(t, []string{"t6", "t1"}, ids(v.buckets.Logs))
}

func TestView_LogDateSelection(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(keyRunes("g"))
	require.True(t, v.HasEditorFocus())
	v.dateInput.SetValue("2024-01-20")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "2024-01-20", v.filter.LogDate)
	assert.Equal(t, []string{"t5"}, ids(v.buckets.Logs), "logs include completed items")

	// "t" jumps back to today.
	v, _ = v.Update(keyRunes("t"))
	assert.Equal(t, "2024-01-22", v.filter.LogDate)
}

func TestView_BadDateRejected(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(keyRunes("g"))
	v.dateInput.SetValue("01/20/2024")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	st, ok := cmd().(uimsg.Status)
	require.True(t, ok)
	assert.True(t, st.IsErr)
	assert.Equal(t, "2024-01-22", v.filter.LogDate, "filter unchanged")
	assert.True(t, v.HasEditorFocus(), "input stays open for correction")
}

func TestView_ToggleSelected(t *testing.T) {
	v := newTestView(t)

	// Cursor starts on t6 in the due section.
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.NotNil(t, cmd)
	assert.IsType(t, uimsg.Refresh{}, cmd())

	item, err := v.app.Todos.Get(context.Background(), "t6")
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, item.Status)
}

func TestView_DeleteRequested(t *testing.T) {
	v := newTestView(t)

	v, cmd := v.Update(keyRunes("d"))
	require.NotNil(t, cmd)

	req, ok := cmd().(uimsg.DeleteRequested)
	require.True(t, ok)
	assert.Equal(t, "t6", req.ItemID)
}

func TestView_OpenCaseRequested(t *testing.T) {
	v := newTestView(t)

	v, cmd := v.Update(keyRunes("o"))
	require.NotNil(t, cmd)

	req, ok := cmd().(uimsg.CaseOpenRequested)
	require.True(t, ok)
	assert.Equal(t, "1150122-07", req.CaseID)
}

func TestView_InlineEdit(t *testing.T) {
	v := newTestView(t)

	v, _ = v.Update(keyRunes("e"))
	require.Equal(t, "t6", v.editingID)
	require.True(t, v.HasEditorFocus())

	v.editInput.SetValue("Cancellation logged, shift reassigned")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, v.editingID)

	item, err := v.app.Todos.Get(context.Background(), "t6")
	require.NoError(t, err)
	assert.Equal(t, "Cancellation logged, shift reassigned", item.Content)
}

func TestView_CursorBounds(t *testing.T) {
	v := newTestView(t)

	for range 20 {
		v, _ = v.Update(keyRunes("j"))
	}
	assert.Equal(t, len(v.rows)-1, v.cursor)

	for range 20 {
		v, _ = v.Update(keyRunes("k"))
	}
	assert.Equal(t, 0, v.cursor)
}

func TestView_RenderSmoke(t *testing.T) {
	v := newTestView(t)

	out := v.View()
	assert.Contains(t, out, "Due")
	assert.Contains(t, out, "Logs")
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "2024-01-22")
}
