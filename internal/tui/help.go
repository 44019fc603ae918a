package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
)

const helpMarkdown = `# Keyboard shortcuts

## Global

| Key | Action |
|-----|--------|
| ` + "`tab` / `shift+tab`" + ` | next / previous tab |
| ` + "`?`" + ` | toggle this help |
| ` + "`q` / `ctrl+c`" + ` | quit |

## Cases

| Key | Action |
|-----|--------|
| ` + "`enter`" + ` | open case drawer |
| ` + "`/`" + ` | filter case list |
| ` + "`a`" + ` | add a to-do (in drawer) |
| ` + "`space`" + ` | toggle to-do done |
| ` + "`e`" + ` | edit to-do |
| ` + "`d`" + ` | delete to-do (asks first) |
| ` + "`esc`" + ` | close drawer |

## To-dos

| Key | Action |
|-----|--------|
| ` + "`1`–`5`" + ` | toggle category filters |
| ` + "`/`" + ` | search |
| ` + "`g`" + ` | pick log date |
| ` + "`t`" + ` | back to today |
| ` + "`c`" + ` | clear filters |
| ` + "`o`" + ` | open the item's case |
| ` + "`space` / `e` / `d`" + ` | toggle / edit / delete |
`

// renderHelp renders the help overlay, centered. Glamour failures fall back
// to the raw markdown rather than hiding the keymap.
func renderHelp(width, height int) string {
	rendered := helpMarkdown

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width-8, 72)),
	)
	if err == nil {
		if out, rerr := r.Render(helpMarkdown); rerr == nil {
			rendered = out
		}
	}

	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(rendered+styles.ModalHelpStyle.Render("esc/? close")),
	)
}
