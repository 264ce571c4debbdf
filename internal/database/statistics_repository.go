package database

import (
	"context"
	"fmt"

	"github.com/example/wordlearner/pkg/models"
)

// StatisticsRepository handles storage of the practice statistics singleton
type StatisticsRepository struct {
	store Store
}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository(store Store) *StatisticsRepository {
	return &StatisticsRepository{store: store}
}

// Get returns the stored statistics; ok is false when none were saved yet
func (r *StatisticsRepository) Get(ctx context.Context) (stats *models.Stats, ok bool, err error) {
	stats = &models.Stats{}
	ok, err = r.store.Get(ctx, KeyStats, stats)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get statistics: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	if stats.Achievements == nil {
		stats.Achievements = []string{}
	}
	return stats, true, nil
}

// Save overwrites the stored statistics
func (r *StatisticsRepository) Save(ctx context.Context, stats *models.Stats) error {
	if err := r.store.Set(ctx, KeyStats, stats); err != nil {
		return fmt.Errorf("failed to save statistics: %w", err)
	}
	return nil
}
