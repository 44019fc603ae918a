package cases

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careops/dispatch/internal/core/styles"
)

// caseDelegate renders one case as a two-line row: case number with patient
// name, then location and shift details.
type caseDelegate struct{}

func (d caseDelegate) Height() int                             { return 2 }
func (d caseDelegate) Spacing() int                            { return 1 }
func (d caseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d caseDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(caseItem)
	if !ok {
		return
	}

	cursor := "  "
	titleStyle := styles.TextForegroundStyle
	if index == m.Index() {
		cursor = styles.TextPrimaryBoldStyle.Render("> ")
		titleStyle = styles.TextPrimaryBoldStyle
	}

	pin := ""
	if item.pinned {
		pin = " " + styles.TextWarningStyle.Render(styles.IconPinned)
	}

	title := fmt.Sprintf("%s  %s%s  %s",
		cursor,
		titleStyle.Render(item.c.ID),
		pin,
		titleStyle.Render(item.c.PatientName),
	)
	badge := styles.CaseStatusStyle(item.c.Status).Render(item.c.Status)
	detail := "      " + styles.TextMutedStyle.Render(
		fmt.Sprintf("%s · %s · %s", item.c.Hospital, item.c.CareType, item.c.Time),
	)

	_, _ = io.WriteString(w, title+"  "+badge+"\n"+detail)
}
