package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/services"
)

// OutputCommand exports every task
type OutputCommand struct {
	app *App
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewValidationError("usage: taskboard output format=csv|json", nil)
	}

	// Parse format option
	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewValidationError("invalid format option: "+format, nil)
	}

	format = strings.TrimPrefix(format, "format=")
	if format != "csv" && format != "json" {
		return errors.NewValidationError("unsupported format: "+format, nil)
	}

	return c.app.withServices(func(svc *services.ServiceContainer) error {
		tasks, err := svc.TaskService.ListTasks(ctx)
		if err != nil {
			return err
		}
		if format == "json" {
			return c.app.writeJSON(tasks)
		}
		return c.outputCSV(tasks)
	})
}

// outputCSV writes one row per task
func (c *OutputCommand) outputCSV(tasks []domain.Task) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Title", "Description", "Completed", "Category", "Tags", "Created At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		var description, category string
		if task.Description != nil {
			description = *task.Description
		}
		if task.Category != nil {
			category = task.Category.Name
		}

		tags := make([]string, 0, len(task.Tags))
		for _, tt := range task.Tags {
			tags = append(tags, tt.Tag.Name)
		}

		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			description,
			strconv.FormatBool(task.Completed),
			category,
			strings.Join(tags, ";"),
			task.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
