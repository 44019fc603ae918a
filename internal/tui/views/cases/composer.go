package cases

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui/uimsg"
)

// Composer is the collapsed/expanded input for adding a to-do to a case.
// Collapsed it renders a one-line hint; expanded it holds a textarea plus a
// category selector.
type Composer struct {
	app      *dispatch.App
	caseID   string
	input    textarea.Model
	category int // index into todo.Categories
	expanded bool
}

// NewComposer creates a collapsed composer for the given case.
func NewComposer(app *dispatch.App, caseID string) Composer {
	ta := textarea.New()
	ta.Placeholder = "Add a note for this case..."
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.CharLimit = 500

	category := 0
	for i, c := range todo.Categories {
		if c == app.Config.DefaultCategory {
			category = i
		}
	}

	return Composer{
		app:      app,
		caseID:   caseID,
		input:    ta,
		category: category,
	}
}

// Expanded reports whether the composer is open and owns keyboard focus.
func (c Composer) Expanded() bool { return c.expanded }

// Expand opens the composer and focuses the textarea.
func (c Composer) Expand() (Composer, tea.Cmd) {
	c.expanded = true
	return c, c.input.Focus()
}

// Collapse closes the composer, discarding any draft.
func (c Composer) Collapse() Composer {
	c.expanded = false
	c.input.Reset()
	c.input.Blur()
	return c
}

// Update handles input while the composer is expanded.
func (c Composer) Update(msg tea.Msg) (Composer, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return c.Collapse(), nil
		case "tab":
			c.category = (c.category + 1) % len(todo.Categories)
			return c, nil
		case "shift+tab":
			c.category = (c.category + len(todo.Categories) - 1) % len(todo.Categories)
			return c, nil
		case "ctrl+s":
			return c.submit()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c Composer) submit() (Composer, tea.Cmd) {
	_, err := c.app.Todos.Create(
		context.Background(), c.caseID, c.input.Value(), todo.Categories[c.category], "",
	)
	if err != nil {
		if errors.Is(err, dispatch.ErrEmptyContent) {
			// Keep the composer open; there is nothing to save yet.
			return c, status("nothing to add", true)
		}
		return c, status("add failed: "+err.Error(), true)
	}

	c = c.Collapse()
	return c, tea.Batch(refresh(), status("to-do added", false))
}

// View renders the composer.
func (c Composer) View() string {
	if !c.expanded {
		return styles.TextMutedStyle.Render("a add to-do")
	}

	chips := make([]string, 0, len(todo.Categories))
	for i, cat := range todo.Categories {
		label := cat.Label()
		if i == c.category {
			chips = append(chips, styles.FormFieldFocusedStyle.Render(styles.CategoryBadge(cat)+" "+label))
		} else {
			chips = append(chips, styles.TextMutedStyle.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.FormTitleStyle.Render("New to-do"),
		lipgloss.JoinHorizontal(lipgloss.Center, joinChips(chips)...),
		c.input.View(),
		styles.FormHelpStyle.Render("tab category  ctrl+s save  esc cancel"),
	)
}

func joinChips(chips []string) []string {
	out := make([]string, 0, len(chips)*2)
	for i, chip := range chips {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, chip)
	}
	return out
}

func refresh() tea.Cmd {
	return func() tea.Msg { return uimsg.Refresh{} }
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return uimsg.Status{Text: text, IsErr: isErr} }
}
