package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/careops/dispatch/internal/core/todo"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/pkg/iojson"
)

// TodoCmd implements the dispatch todo command group.
type TodoCmd struct {
	flags *Flags
	app   *dispatch.App

	// list flags
	listStatus   string
	listCase     string
	listCategory string

	// add flags
	addCase     string
	addContent  string
	addCategory string
	addDue      string

	// delete flags
	deleteYes bool
}

// NewTodoCmd creates a new todo command.
func NewTodoCmd(flags *Flags, app *dispatch.App) *TodoCmd {
	return &TodoCmd{flags: flags, app: app}
}

// Register adds the todo command to the application.
func (cmd *TodoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "todo",
		Usage: "Manage case to-do items",
		Description: `To-do commands for scripting against the shared collection.

Examples:
  dispatch todo list                          # pending items as JSON lines
  dispatch todo list --case 1150122-07        # one case's timeline
  dispatch todo add --case 1150122-07 --content "Call the family"
  dispatch todo add                           # interactive form
  dispatch todo toggle <id>                   # flip pending/completed
  dispatch todo edit <id> "new content"
  dispatch todo delete <id>                   # asks before deleting`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.addCmd(),
			cmd.toggleCmd(),
			cmd.editCmd(),
			cmd.deleteCmd(),
		},
	})
	return app
}

func (cmd *TodoCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List to-do items as JSON lines",
		UsageText: "dispatch todo list [--status <status>] [--case <id>] [--category <category>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (pending, completed); empty lists all",
				Destination: &cmd.listStatus,
			},
			&cli.StringFlag{
				Name:        "case",
				Usage:       "filter by case id",
				Destination: &cmd.listCase,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "filter by category (value or label)",
				Destination: &cmd.listCategory,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *TodoCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a to-do item",
		UsageText: "dispatch todo add [--case <id>] [--content <text>] [--category <category>]",
		Description: `Adds a to-do to a case. Missing flags are collected through an
interactive form when running in a terminal.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "case",
				Usage:       "case id the item belongs to",
				Destination: &cmd.addCase,
			},
			&cli.StringFlag{
				Name:        "content",
				Usage:       "item content",
				Destination: &cmd.addContent,
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "item category (defaults to the configured default)",
				Destination: &cmd.addCategory,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date (2006-01-02); due items surface in the dashboard's due bucket",
				Destination: &cmd.addDue,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *TodoCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Flip an item between pending and completed",
		UsageText: "dispatch todo toggle <id>",
		Action:    cmd.runToggle,
	}
}

func (cmd *TodoCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Replace an item's content",
		UsageText: "dispatch todo edit <id> <content>",
		Action:    cmd.runEdit,
	}
}

func (cmd *TodoCmd) deleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete an item",
		UsageText: "dispatch todo delete [--yes] <id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.deleteYes,
			},
		},
		Action: cmd.runDelete,
	}
}

func (cmd *TodoCmd) runList(ctx context.Context, c *cli.Command) error {
	filter := todo.ListFilter{CaseID: cmd.listCase}

	if cmd.listStatus != "" {
		status := todo.Status(cmd.listStatus)
		if !status.IsValid() {
			return fmt.Errorf("invalid status %q: must be pending or completed", cmd.listStatus)
		}
		filter.Status = status
	}
	if cmd.listCategory != "" {
		category, ok := todo.ParseCategory(cmd.listCategory)
		if !ok {
			return fmt.Errorf("invalid category %q", cmd.listCategory)
		}
		filter.Category = category
	}

	items, err := cmd.app.Todos.List(ctx, filter)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := iojson.WriteLine(os.Stdout, item); err != nil {
			return fmt.Errorf("write todo: %w", err)
		}
	}
	return nil
}

func (cmd *TodoCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if cmd.addCase == "" || cmd.addContent == "" {
		if err := cmd.promptAdd(ctx); err != nil {
			return err
		}
	}

	category := cmd.app.Config.DefaultCategory
	if cmd.addCategory != "" {
		parsed, ok := todo.ParseCategory(cmd.addCategory)
		if !ok {
			return fmt.Errorf("invalid category %q", cmd.addCategory)
		}
		category = parsed
	}

	item, err := cmd.app.Todos.Create(ctx, cmd.addCase, cmd.addContent, category, cmd.addDue)
	if err != nil {
		return err
	}

	log.Info().Str("id", item.ID).Str("case", item.CaseID).Msg("todo added")
	return iojson.Write(os.Stdout, item)
}

// promptAdd fills the missing add flags through an interactive form.
func (cmd *TodoCmd) promptAdd(ctx context.Context) error {
	if !iojson.StdoutIsTerminal() {
		return fmt.Errorf("--case and --content are required when not running in a terminal")
	}

	cases, err := cmd.app.Cases.List(ctx)
	if err != nil {
		return err
	}

	caseOptions := make([]huh.Option[string], 0, len(cases))
	for _, cs := range cases {
		caseOptions = append(caseOptions,
			huh.NewOption(fmt.Sprintf("%s  %s", cs.ID, cs.PatientName), cs.ID))
	}

	categoryOptions := make([]huh.Option[string], 0, len(todo.Categories))
	for _, cat := range todo.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat.Label(), string(cat)))
	}
	if cmd.addCategory == "" {
		cmd.addCategory = string(cmd.app.Config.DefaultCategory)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Case").
			Options(caseOptions...).
			Value(&cmd.addCase),
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions...).
			Value(&cmd.addCategory),
		huh.NewText().
			Title("Content").
			CharLimit(500).
			Value(&cmd.addContent),
	))
	return form.Run()
}

func (cmd *TodoCmd) runToggle(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("todo id is required")
	}

	item, err := cmd.app.Todos.Toggle(ctx, id)
	if err != nil {
		return err
	}
	return iojson.Write(os.Stdout, item)
}

func (cmd *TodoCmd) runEdit(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	content := c.Args().Get(1)
	if id == "" || content == "" {
		return fmt.Errorf("usage: dispatch todo edit <id> <content>")
	}

	item, err := cmd.app.Todos.Edit(ctx, id, content)
	if err != nil {
		return err
	}
	return iojson.Write(os.Stdout, item)
}

func (cmd *TodoCmd) runDelete(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("todo id is required")
	}

	item, err := cmd.app.Todos.Get(ctx, id)
	if err != nil {
		return err
	}

	if !cmd.deleteYes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Delete this to-do?").
			Description(item.Content).
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := cmd.app.Todos.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("id", id).Msg("todo deleted")
	return nil
}
