package services

import (
	"context"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqldb.TaskRepository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqldb.TaskRepository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// ListTasks returns every task, newest first
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateID(id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// CreateTask creates a task and links the requested tags
func (t *taskServiceImpl) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	if err := t.taskValidator.ValidateCreate(input); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Description != nil && *input.Description == "" {
		input.Description = nil
	}

	dbTask := t.mapper.Task.ToDatabase(input)
	if err := t.repo.CreateTask(ctx, &dbTask, input.TagIDs); err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(dbTask)
	return &task, nil
}

// UpdateTask applies the supplied fields and returns the stored task
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (*domain.Task, error) {
	if err := t.taskValidator.ValidateUpdate(id, input); err != nil {
		return nil, errors.NewValidationError("invalid task update", err)
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		input.Title = &trimmed
	}

	if err := t.repo.UpdateTask(ctx, id, t.mapper.Task.ToPatch(input)); err != nil {
		return nil, err
	}

	return t.GetTask(ctx, id)
}

// DeleteTask removes a task and its tag links
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateID(id); err != nil {
		return errors.NewValidationError("invalid task id", err)
	}
	return t.repo.DeleteTask(ctx, id)
}

// ToggleTask reads the current flag, stores its negation and returns the task
func (t *taskServiceImpl) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	current, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := t.repo.SetTaskCompleted(ctx, id, !current.Completed); err != nil {
		return nil, err
	}

	return t.GetTask(ctx, id)
}
