package cli

import (
	"context"
	"os"
	"path/filepath"

	"taskboard/internal/board"
	"taskboard/internal/client"
	"taskboard/internal/logging"
	"taskboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner runs a bubbletea model to completion
type ProgramRunner func(ctx context.Context, model tea.Model) error

// BoardCommand opens the terminal board against a running API
type BoardCommand struct {
	app *App
	run ProgramRunner
}

// NewBoardCommandWithRunner creates a board command that hands its model to
// run. The root command passes a runner using the alternate screen.
func NewBoardCommandWithRunner(app *App, run ProgramRunner) *BoardCommand {
	return &BoardCommand{app: app, run: run}
}

// Execute builds the client, store and model and runs them
func (c *BoardCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config

	// stderr belongs to the terminal UI while it runs
	log := logging.Discard()
	if cfg.Application.Debug {
		f, err := os.OpenFile(filepath.Join(os.TempDir(), "taskboard-board.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		log = logging.New(f, true)
	}

	api := client.New(cfg.Client.BaseURL, cfg.Client.RequestTimeout)
	store := board.NewStore(api,
		board.WithLogger(log),
		board.WithDefaultColors(cfg.Defaults.CategoryColor, cfg.Defaults.TagColor),
	)

	log.Debugf("board talking to %s", api.BaseURL())
	return c.run(ctx, tui.New(ctx, store))
}

func runProgram(ctx context.Context, model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
