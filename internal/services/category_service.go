package services

import (
	"context"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/validation"
)

type categoryServiceImpl struct {
	repo      sqldb.CategoryRepository
	mapper    *domain.CategoryMapper
	validator *validation.LabelValidator
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(repo sqldb.CategoryRepository, validator *validation.LabelValidator) CategoryService {
	if validator == nil {
		validator = validation.NewLabelValidator(nil)
	}
	return &categoryServiceImpl{
		repo:      repo,
		mapper:    domain.NewCategoryMapper(),
		validator: validator,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	dbCategories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(dbCategories), nil
}

// CreateCategory stores a category, defaulting a blank color
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	if err := s.validator.ValidateName("category", input.Name); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Color = s.validator.CategoryColor(input.Color)

	dbCategory := s.mapper.ToDatabase(input)
	if err := s.repo.CreateCategory(ctx, &dbCategory); err != nil {
		return nil, err
	}

	category := s.mapper.FromDatabase(dbCategory)
	return &category, nil
}

// DeleteCategory removes a category; its tasks survive uncategorized
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}
