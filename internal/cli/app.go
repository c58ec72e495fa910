package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/services"
)

// Command is implemented by every command handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// App carries what command handlers share: configuration, output and
// access to storage
type App struct {
	config *config.Config
	log    *logging.Logger
	out    io.Writer

	// shared is used instead of opening a repository per command when set
	shared sqldb.Repository
}

// NewApp creates a new CLI application. cfg is read when a command runs,
// so flag overrides applied to it after construction take effect.
func NewApp(cfg *config.Config, log *logging.Logger, out io.Writer) *App {
	if log == nil {
		log = logging.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{config: cfg, log: log, out: out}
}

// NewAppWithRepository creates an App whose commands all use repo.
// The caller owns repo and closes it.
func NewAppWithRepository(cfg *config.Config, repo sqldb.Repository, log *logging.Logger, out io.Writer) *App {
	app := NewApp(cfg, log, out)
	app.shared = repo
	return app
}

// withRepository opens the configured repository for the duration of fn
func (a *App) withRepository(fn func(repo sqldb.Repository) error) error {
	if a.shared != nil {
		return fn(a.shared)
	}

	factory := config.NewRepositoryFactory(config.GetEnvironment(), a.config)
	repo, err := factory.Create()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			a.log.Warnf("failed to close database: %v", cerr)
		}
	}()

	a.log.Debugf("opened %s repository (%s)", repo.Dialect(), factory.Environment())
	return fn(repo)
}

// withServices opens the repository and wires the services over it
func (a *App) withServices(fn func(svc *services.ServiceContainer) error) error {
	return a.withRepository(func(repo sqldb.Repository) error {
		return fn(services.NewServiceContainer(repo, a.config))
	})
}

// writeJSON prints v as indented JSON
func (a *App) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
