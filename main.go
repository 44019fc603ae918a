package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/careops/dispatch/internal/commands"
	"github.com/careops/dispatch/internal/core/config"
	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/careops/dispatch/internal/core/styles"
	"github.com/careops/dispatch/internal/data/seed"
	"github.com/careops/dispatch/internal/data/stores"
	"github.com/careops/dispatch/internal/dispatch"
	"github.com/careops/dispatch/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser   func()
		dispatchApp = &dispatch.App{}
		busCancel   context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "dispatch",
		Usage:     "Home-care case and to-do dashboard",
		UsageText: "dispatch [global options] command [command options]",
		Description: `Dispatch is the duty desk for a home-care operation: every active
case, every open to-do, and a daily log in one place.

Run 'dispatch' with no arguments to open the interactive dashboard.
The case and todo command groups expose the same data for scripting.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DISPATCH_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("DISPATCH_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DISPATCH_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme, overrides the config file",
				Sources:     cli.EnvVars("DISPATCH_THEME"),
				Destination: &flags.Theme,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Theme != "" {
				if _, ok := styles.GetPalette(flags.Theme); !ok {
					return ctx, fmt.Errorf("unknown theme %q", flags.Theme)
				}
				cfg.Theme = flags.Theme
			}

			// Apply configured theme (validation ensures the name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			bus := eventbus.New(64)
			eventbus.RegisterDebugLogger(bus, log.Logger)

			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			go bus.Start(busCtx)

			// Populate the pre-allocated App struct (commands already hold
			// a pointer to it)
			*dispatchApp = *dispatch.NewApp(
				stores.NewTodoStore(seed.Todos()),
				stores.NewCaseStore(seed.Cases()),
				cfg,
				bus,
				log.Logger,
			)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if busCancel != nil {
				busCancel()
			}
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, dispatchApp)

	app = commands.NewCaseCmd(flags, dispatchApp).Register(app)
	app = commands.NewTodoCmd(flags, dispatchApp).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Open the dashboard when no subcommand is given
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'dispatch --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
