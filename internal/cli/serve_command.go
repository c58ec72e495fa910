package cli

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/services"
)

// ServeCommand runs the HTTP API until ctx is cancelled
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute opens storage and serves the API on the configured address
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	return c.app.withServices(func(svc *services.ServiceContainer) error {
		server := api.New(svc, c.app.config, c.app.log)
		return server.Run(ctx)
	})
}
