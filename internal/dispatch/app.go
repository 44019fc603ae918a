// Package dispatch wires the domain stores, config, and event bus into the
// services consumed by the CLI commands and the TUI.
package dispatch

import (
	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/config"
	"github.com/careops/dispatch/internal/core/eventbus"
	"github.com/careops/dispatch/internal/core/todo"
	"github.com/rs/zerolog"
)

// App is the central entry point for all dispatch operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Todos  *TodoService
	Cases  *CaseService
	Config *config.Config
	Bus    *eventbus.EventBus
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	todoStore todo.Store,
	caseStore casefile.Store,
	cfg *config.Config,
	bus *eventbus.EventBus,
	log zerolog.Logger,
) *App {
	return &App{
		Todos:  NewTodoService(todoStore, caseStore, cfg, bus, log),
		Cases:  NewCaseService(caseStore, cfg, bus, log),
		Config: cfg,
		Bus:    bus,
	}
}
