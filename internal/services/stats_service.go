package services

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/repository/sqldb"
)

type statsServiceImpl struct {
	repo   sqldb.StatsRepository
	mapper *domain.StatsMapper
}

// NewStatsService creates a new StatsService instance
func NewStatsService(repo sqldb.StatsRepository) StatsService {
	return &statsServiceImpl{repo: repo, mapper: domain.NewStatsMapper()}
}

// GetStats reads the counts and derives the active count and completion rate
func (s *statsServiceImpl) GetStats(ctx context.Context) (*domain.Stats, error) {
	counts, err := s.repo.CountStats(ctx)
	if err != nil {
		return nil, err
	}
	stats := s.mapper.FromDatabase(*counts)
	return &stats, nil
}
