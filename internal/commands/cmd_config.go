package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/careops/dispatch/internal/core/config"
)

// ConfigCmd implements the dispatch config command group.
type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect configuration",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate the config file and print the result",
				UsageText: "dispatch config validate",
				Action:    cmd.runValidate,
			},
		},
	})
	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, _ *cli.Command) error {
	cfg, err := config.Load(cmd.flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("config is invalid: %w", err)
	}

	fmt.Printf("config ok: theme=%s operator=%q default_category=%s\n",
		cfg.Theme, cfg.Operator, cfg.DefaultCategory)
	return nil
}
