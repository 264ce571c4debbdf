package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/wordlearner/internal/config"
)

// Keys of the flat key-value layout
const (
	KeyWords    = "words"
	KeyStats    = "stats"
	KeySettings = "settings"
	KeyErrors   = "errors"
)

// Store is a flat key-value store holding JSON documents
type Store interface {
	// Get decodes the value under key into dest. It reports false when the key is absent.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Open connects to the store selected by the configuration
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return ConnectSQLite(ctx, cfg.DBPath)
	case config.StorePostgres:
		return ConnectPostgres(ctx, cfg.DatabaseURL)
	case config.StoreRedis:
		return ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// SQLStore keeps the key-value documents in a single SQL table
type SQLStore struct {
	db *sqlx.DB
}

// ConnectSQLite opens (and creates if missing) the SQLite database at path
func ConnectSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return newSQLStore(ctx, db)
}

// ConnectPostgres opens a Postgres database using the given connection string
func ConnectPostgres(ctx context.Context, url string) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newSQLStore(ctx, db)
}

func newSQLStore(ctx context.Context, db *sqlx.DB) (*SQLStore, error) {
	s := &SQLStore{db: db}
	if err := s.initializeSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// initializeSchema creates the key-value table if it doesn't exist
func (s *SQLStore) initializeSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, s.db.Rebind("SELECT value FROM kv_store WHERE name = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	query := s.db.Rebind(`
		INSERT INTO kv_store (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`)
	if _, err := s.db.ExecContext(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM kv_store WHERE name IN (?)", keys)
	if err != nil {
		return fmt.Errorf("failed to build delete: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("failed to delete %v: %w", keys, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
