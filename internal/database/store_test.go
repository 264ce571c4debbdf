package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/wordlearner/pkg/models"
)

func openTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := ConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	var got map[string]int
	ok, err := store.Get(ctx, "missing", &got)
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key to report false")
	}

	if err := store.Set(ctx, "counter", map[string]int{"n": 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// upsert must overwrite rather than fail on the primary key
	if err := store.Set(ctx, "counter", map[string]int{"n": 2}); err != nil {
		t.Fatalf("Set again: %v", err)
	}

	ok, err = store.Get(ctx, "counter", &got)
	if err != nil || !ok {
		t.Fatalf("Get counter: ok=%v err=%v", ok, err)
	}
	if got["n"] != 2 {
		t.Fatalf("counter = %d, want 2", got["n"])
	}

	if err := store.Set(ctx, "other", "x"); err != nil {
		t.Fatalf("Set other: %v", err)
	}
	if err := store.Delete(ctx, "counter", "other", "never-existed"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var s string
	if ok, _ := store.Get(ctx, "other", &s); ok {
		t.Fatalf("expected other to be deleted")
	}
}

func TestSQLStorePersistsAcrossConnections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	first, err := ConnectSQLite(ctx, path)
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	if err := NewSettingsRepository(first).Save(ctx, models.Settings{TargetLanguage: "de"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_ = first.Close()

	second, err := ConnectSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	defer second.Close()
	settings, err := NewSettingsRepository(second).Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.TargetLanguage != "de" {
		t.Fatalf("TargetLanguage = %q, want de", settings.TargetLanguage)
	}
}

func TestRepositoriesDefaults(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	words, err := NewWordRepository(store).GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if words == nil || len(words) != 0 {
		t.Fatalf("expected empty non-nil words, got %#v", words)
	}

	stats, ok, err := NewStatisticsRepository(store).Get(ctx)
	if err != nil || ok || stats != nil {
		t.Fatalf("expected no stats yet, got %v %v %v", stats, ok, err)
	}

	settings, err := NewSettingsRepository(store).Get(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Fatalf("settings = %+v", settings)
	}
}

func TestWordRepositoryKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepository(openTestStore(t))

	in := []models.WordRecord{{ID: "b", Word: "beta"}, {ID: "a", Word: "alpha"}, {ID: "c", Word: "gamma"}}
	if err := repo.SaveAll(ctx, in); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	out, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Fatalf("order changed: %v", out)
		}
	}
}

func TestErrorRepositoryRingBuffer(t *testing.T) {
	ctx := context.Background()
	repo := NewErrorRepository(openTestStore(t), UserAgent("test"))
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	repo.now = func() time.Time { n++; return base.Add(time.Duration(n) * time.Second) }

	for i := 0; i < MaxErrorEntries+5; i++ {
		if _, err := repo.Log(ctx, fmt.Sprintf("err %d", i), "", "ctx"); err != nil {
			t.Fatalf("Log %d: %v", i, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != MaxErrorEntries {
		t.Fatalf("len = %d, want %d", len(entries), MaxErrorEntries)
	}
	if entries[0].Message != fmt.Sprintf("err %d", MaxErrorEntries+4) {
		t.Errorf("newest first: got %q", entries[0].Message)
	}
	if entries[len(entries)-1].Message != "err 5" {
		t.Errorf("oldest kept: got %q", entries[len(entries)-1].Message)
	}
	if entries[0].ID == "" || entries[0].UserAgent == "" {
		t.Errorf("entry missing id or user agent: %+v", entries[0])
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, _ = repo.List(ctx)
	if len(entries) != 0 {
		t.Fatalf("expected empty after clear, got %d", len(entries))
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	store, err := ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Fatalf("ConnectRedis: %v", err)
	}
	defer store.Close()

	key := "test-" + time.Now().Format("150405.000000")
	defer store.Delete(ctx, key)

	if err := store.Set(ctx, key, []string{"a", "b"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got []string
	ok, err := store.Get(ctx, key, &got)
	if err != nil || !ok || len(got) != 2 {
		t.Fatalf("Get: ok=%v err=%v got=%v", ok, err, got)
	}
}
