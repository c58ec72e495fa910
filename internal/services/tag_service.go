package services

import (
	"context"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/validation"
)

type tagServiceImpl struct {
	repo      sqldb.TagRepository
	mapper    *domain.TagMapper
	validator *validation.LabelValidator
}

// NewTagService creates a new TagService instance
func NewTagService(repo sqldb.TagRepository, validator *validation.LabelValidator) TagService {
	if validator == nil {
		validator = validation.NewLabelValidator(nil)
	}
	return &tagServiceImpl{
		repo:      repo,
		mapper:    domain.NewTagMapper(),
		validator: validator,
	}
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]domain.Tag, error) {
	dbTags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(dbTags), nil
}

// CreateTag stores a tag, defaulting a blank color
func (s *tagServiceImpl) CreateTag(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error) {
	if err := s.validator.ValidateName("tag", input.Name); err != nil {
		return nil, errors.NewValidationError("invalid tag", err)
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Color = s.validator.TagColor(input.Color)

	dbTag := s.mapper.ToDatabase(input)
	if err := s.repo.CreateTag(ctx, &dbTag); err != nil {
		return nil, err
	}

	tag := s.mapper.FromDatabase(dbTag)
	return &tag, nil
}

// DeleteTag removes a tag and its task links
func (s *tagServiceImpl) DeleteTag(ctx context.Context, id int64) error {
	return s.repo.DeleteTag(ctx, id)
}
