package database

import (
	"context"
	"fmt"

	"github.com/example/wordlearner/pkg/models"
)

// WordRepository handles storage of the saved words list
type WordRepository struct {
	store Store
}

// NewWordRepository creates a new repository instance
func NewWordRepository(store Store) *WordRepository {
	return &WordRepository{store: store}
}

// GetAll returns all words in storage order
func (r *WordRepository) GetAll(ctx context.Context) ([]models.WordRecord, error) {
	var words []models.WordRecord
	if _, err := r.store.Get(ctx, KeyWords, &words); err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}
	if words == nil {
		words = []models.WordRecord{}
	}
	return words, nil
}

// SaveAll replaces the stored list with words
func (r *WordRepository) SaveAll(ctx context.Context, words []models.WordRecord) error {
	if words == nil {
		words = []models.WordRecord{}
	}
	if err := r.store.Set(ctx, KeyWords, words); err != nil {
		return fmt.Errorf("failed to save words: %w", err)
	}
	return nil
}

// Clear removes every saved word
func (r *WordRepository) Clear(ctx context.Context) error {
	return r.SaveAll(ctx, nil)
}
