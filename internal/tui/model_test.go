package tui

import (
	"context"
	"testing"

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

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	app := dispatch.NewApp(
		stores.NewTodoStore(seed.Todos()),
		stores.NewCaseStore(seed.Cases()),
		&cfg,
		eventbus.New(8),
		zerolog.Nop(),
	)

	m, err := NewModel(app)
	require.NoError(t, err)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return sized.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TabCyclesAllTabs(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ViewCases, m.activeView)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, ViewTodos, m.activeView)

	// Placeholder tabs are selectable and render a stub panel.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, ViewCaregivers, m.activeView)
	assert.Contains(t, m.View(), "caregivers")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, ViewTodos, m.activeView)
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyRunes("?"))
	m = next.(Model)
	assert.Equal(t, stateShowingHelp, m.state)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_DeleteFlow(t *testing.T) {
	count := func(m Model) int {
		items, err := m.app.Todos.List(context.Background(), todo.ListFilter{})
		require.NoError(t, err)
		return len(items)
	}

	t.Run("cancel leaves the collection unchanged", func(t *testing.T) {
		m := newTestModel(t)

		next, _ := m.Update(uimsg.DeleteRequested{ItemID: "t1", Summary: "x"})
		m = next.(Model)
		require.Equal(t, stateConfirming, m.state)

		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = next.(Model)
		assert.Equal(t, stateNormal, m.state)
		assert.Equal(t, 6, count(m))
	})

	t.Run("enter on default selection cancels", func(t *testing.T) {
		m := newTestModel(t)

		next, _ := m.Update(uimsg.DeleteRequested{ItemID: "t1", Summary: "x"})
		m = next.(Model)
		require.False(t, m.modal.ConfirmSelected(), "cancel is pre-selected")

		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(Model)
		assert.Equal(t, 6, count(m))
	})

	t.Run("confirm removes the item", func(t *testing.T) {
		m := newTestModel(t)

		next, _ := m.Update(uimsg.DeleteRequested{ItemID: "t1", Summary: "x"})
		m = next.(Model)

		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(Model)
		require.True(t, m.modal.ConfirmSelected())

		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(Model)
		assert.Equal(t, stateNormal, m.state)
		assert.Equal(t, 5, count(m))

		_, err := m.app.Todos.Get(context.Background(), "t1")
		assert.ErrorIs(t, err, todo.ErrNotFound)
	})
}

func TestModel_CaseOpenRequestSwitchesTab(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.Equal(t, ViewTodos, m.activeView)

	next, _ = m.Update(uimsg.CaseOpenRequested{CaseID: "1150122-07"})
	m = next.(Model)
	assert.Equal(t, ViewCases, m.activeView)
	assert.True(t, m.casesView.DrawerOpen())
}

func TestModel_StatusMessage(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(uimsg.Status{Text: "to-do added"})
	m = next.(Model)
	assert.Equal(t, "to-do added", m.statusText)
	assert.False(t, m.statusIsErr)
}

func TestViewType_String(t *testing.T) {
	assert.Equal(t, "cases", ViewCases.String())
	assert.Equal(t, "to-dos", ViewTodos.String())
	assert.True(t, ViewTodos.Live())
	assert.False(t, ViewAnalytics.Live())
}
