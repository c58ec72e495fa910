package services

import (
	"context"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/validation"
)

// TaskService handles task lifecycle operations
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	// ToggleTask flips the completed flag; unknown IDs yield a not-found error
	ToggleTask(ctx context.Context, id int64) (*domain.Task, error)
}

// CategoryService handles category operations
type CategoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// TagService handles tag operations
type TagService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}

// StatsService computes board statistics
type StatsService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService     TaskService
	CategoryService CategoryService
	TagService      TagService
	StatsService    StatsService
}

// NewServiceContainer wires every service to repo. cfg may be nil, in which
// case the built-in color defaults apply.
func NewServiceContainer(repo sqldb.Repository, cfg *config.Config) *ServiceContainer {
	v := validation.NewValidator()
	if cfg != nil {
		v = validation.NewValidatorWithConfig(cfg)
	}
	labels := validation.NewLabelValidator(v)

	return &ServiceContainer{
		TaskService:     NewTaskService(repo),
		CategoryService: NewCategoryService(repo, labels),
		TagService:      NewTagService(repo, labels),
		StatsService:    NewStatsService(repo),
	}
}
