package database

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/example/wordlearner/pkg/models"
)

// MaxErrorEntries is how many reported errors are kept, newest first
const MaxErrorEntries = 20

// UserAgent identifies this process in error reports
func UserAgent(version string) string {
	return fmt.Sprintf("wordlearner/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}

// ErrorRepository keeps a bounded log of reported errors
type ErrorRepository struct {
	store     Store
	userAgent string
	now       func() time.Time
}

// NewErrorRepository creates a new repository instance
func NewErrorRepository(store Store, userAgent string) *ErrorRepository {
	return &ErrorRepository{store: store, userAgent: userAgent, now: time.Now}
}

// Log prepends a new entry and drops the oldest ones beyond MaxErrorEntries
func (r *ErrorRepository) Log(ctx context.Context, message, stack, errContext string) (models.ErrorEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return models.ErrorEntry{}, err
	}

	entry := models.ErrorEntry{
		ID:        uuid.NewString(),
		Message:   message,
		Stack:     stack,
		Context:   errContext,
		Timestamp: r.now(),
		UserAgent: r.userAgent,
	}

	entries = append([]models.ErrorEntry{entry}, entries...)
	if len(entries) > MaxErrorEntries {
		entries = entries[:MaxErrorEntries]
	}

	if err := r.store.Set(ctx, KeyErrors, entries); err != nil {
		return models.ErrorEntry{}, fmt.Errorf("failed to save errors: %w", err)
	}
	return entry, nil
}

// List returns the logged errors, newest first
func (r *ErrorRepository) List(ctx context.Context) ([]models.ErrorEntry, error) {
	var entries []models.ErrorEntry
	if _, err := r.store.Get(ctx, KeyErrors, &entries); err != nil {
		return nil, fmt.Errorf("failed to get errors: %w", err)
	}
	if entries == nil {
		entries = []models.ErrorEntry{}
	}
	return entries, nil
}

// Clear drops every logged error
func (r *ErrorRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeyErrors); err != nil {
		return fmt.Errorf("failed to clear errors: %w", err)
	}
	return nil
}
