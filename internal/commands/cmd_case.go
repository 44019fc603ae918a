package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/pkg/iojson"
)

// CaseCmd implements the dispatch case command group.
type CaseCmd struct {
	flags *Flags
	app   *dispatch.App

	// list flags
	listStatus string
}

// NewCaseCmd creates a new case command.
func NewCaseCmd(flags *Flags, app *dispatch.App) *CaseCmd {
	return &CaseCmd{flags: flags, app: app}
}

// Register adds the case command to the application.
func (cmd *CaseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "case",
		Usage: "Inspect the case roster",
		Description: `Case commands for scripting against the roster.

Examples:
  dispatch case ls                       # list all cases
  dispatch case ls --status unassigned   # filter by status
  dispatch case show 1150122-07          # one case with its to-dos`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.showCmd(),
		},
	})
	return app
}

func (cmd *CaseCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List cases as JSON lines",
		UsageText: "dispatch case ls [--status <status>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (e.g. unassigned, assigned, no-show)",
				Destination: &cmd.listStatus,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *CaseCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one case with its to-do timeline",
		UsageText: "dispatch case show <id>",
		Action:    cmd.runShow,
	}
}

func (cmd *CaseCmd) runList(ctx context.Context, c *cli.Command) error {
	cases, err := cmd.app.Cases.ListByStatus(ctx, cmd.listStatus)
	if err != nil {
		return err
	}

	for _, cs := range cases {
		if err := iojson.WriteLine(os.Stdout, cs); err != nil {
			return fmt.Errorf("write case: %w", err)
		}
	}
	return nil
}

func (cmd *CaseCmd) runShow(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("case id is required")
	}

	cs, err := cmd.app.Cases.Get(ctx, id)
	if err != nil {
		return err
	}
	items, err := cmd.app.Todos.ForCase(ctx, id)
	if err != nil {
		return err
	}

	out := struct {
		Case  any `json:"case"`
		Todos any `json:"todos"`
	}{Case: cs, Todos: items}
	return iojson.Write(os.Stdout, out)
}
