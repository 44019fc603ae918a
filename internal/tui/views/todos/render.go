package todos

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/core/todo"
)

// View renders the to-do tab: filter bar, then the three triage sections.
func (v View) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		v.renderFilterBar(),
		"",
		v.renderSection(sectionDue, styles.SectionDueStyle.Render(styles.IconDue+" Due"), v.buckets.Due,
			"Nothing urgent right now."),
		"",
		v.renderSection(sectionLogs, styles.SectionLogsStyle.Render(styles.IconHistory+" Logs · "+v.filter.LogDate), v.buckets.Logs,
			"No activity recorded on this date."),
		"",
		v.renderSection(sectionBacklog, styles.SectionBacklogStyle.Render(styles.IconInbox+" Backlog"), v.buckets.Backlog,
			"Backlog is clear."),
	)
}

func (v View) renderFilterBar() string {
	chips := make([]string, 0, len(todo.Categories))
	for i, c := range todo.Categories {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if v.categorySelected(c) {
			chips = append(chips, styles.FormFieldFocusedStyle.Render(label))
		} else {
			chips = append(chips, styles.TextMutedStyle.Render(label))
		}
	}
	chipRow := lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(chips)...)

	search := styles.IconSearch + " "
	switch {
	case v.focus == focusSearch:
		search += v.searchInput.View()
	case v.filter.Search != "":
		search += styles.TextForegroundStyle.Render(v.filter.Search)
	default:
		search += styles.TextMutedStyle.Render("/ search")
	}

	date := styles.IconCalendar + " "
	if v.focus == focusDate {
		date += v.dateInput.View()
	} else {
		date += styles.TextMutedStyle.Render("g date  t today")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		chipRow,
		lipgloss.JoinHorizontal(lipgloss.Center, search, "   ", date),
	)
}

func (v View) renderSection(s section, header string, items []todo.Item, empty string) string {
	lines := []string{header}
	if len(items) == 0 {
		lines = append(lines, "  "+styles.TextMutedStyle.Render(empty))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	// Row index of this section's first item within the flat cursor space.
	offset := 0
	for _, r := range v.rows {
		if r.section == s {
			break
		}
		offset++
	}

	for i, item := range items {
		lines = append(lines, v.renderItem(item, offset+i == v.cursor)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v View) renderItem(item todo.Item, selected bool) []string {
	if v.editingID == item.ID && selected {
		return []string{"  " + v.editInput.View()}
	}

	cursor := "  "
	if selected {
		cursor = styles.TextPrimaryBoldStyle.Render("> ")
	}

	check := styles.IconPending
	contentStyle := styles.TextForegroundStyle
	if item.Completed() {
		check = styles.TextSuccessStyle.Render(styles.IconCompleted)
		contentStyle = styles.TextStrikeStyle
	}

	line := cursor + check + " " + styles.CategoryBadge(item.Category) + " " + contentStyle.Render(item.Content)
	meta := "      " + styles.TextMutedStyle.Render(
		item.CaseID+" · "+v.patientName(item.CaseID)+" · "+item.CreatedAt,
	)
	if item.DueDate != "" {
		meta += styles.TextWarningStyle.Render("  " + styles.IconDue + " " + item.DueDate)
	}
	return []string{line, meta}
}

// patientName resolves the display name for an item's case. A dangling case
// reference degrades to a placeholder instead of hiding the item.
func (v View) patientName(caseID string) string {
	c, err := v.app.Cases.Get(context.Background(), caseID)
	if err != nil {
		return "unknown patient"
	}
	return c.PatientName
}

func joinWithGap(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
