package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/internal/tui"
)

// TuiCmd launches the interactive dashboard.
type TuiCmd struct {
	flags *Flags
	app   *dispatch.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *dispatch.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Run executes the TUI. Exported for use as the default command.
func (cmd *TuiCmd) Run(_ context.Context, _ *cli.Command) error {
	m, err := tui.NewModel(cmd.app)
	if err != nil {
		return fmt.Errorf("init dashboard: %w", err)
	}
	if err := tui.Run(m); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
