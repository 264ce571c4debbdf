package database

import (
	"context"
	"fmt"

	"github.com/example/wordlearner/pkg/models"
)

// SettingsRepository handles storage of user settings
type SettingsRepository struct {
	store Store
}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository(store Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the saved settings, or the defaults if nothing was saved
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := r.store.Get(ctx, KeySettings, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Save overwrites the saved settings
func (r *SettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	if err := r.store.Set(ctx, KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
