package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupEnv points the CLI at a fresh database and at a model server that
// does not know the configured model
func setupEnv(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found","type":"invalid_request_error"}}`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	t.Setenv("WORDLEARNER_STORE", "sqlite")
	t.Setenv("WORDLEARNER_DB_PATH", filepath.Join(dir, "cli.db"))
	t.Setenv("AI_BASE_URL", srv.URL+"/v1")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("LOG_MODE", "prod")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSaveListAndDuplicate(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "save", "Serendipity", "--context", "pure serendipity", "--url", "https://example.com")
	if err != nil {
		t.Fatalf("save: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved Serendipity") {
		t.Fatalf("unexpected save output: %s", out)
	}

	out, err = run(t, "save", "serendipity")
	if err != nil {
		t.Fatalf("duplicate save should not fail: %v", err)
	}
	if !strings.Contains(out, "already saved") {
		t.Fatalf("expected duplicate message, got: %s", out)
	}

	out, err = run(t, "words")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if !strings.Contains(out, "Words (1)") {
		t.Fatalf("unexpected list: %s", out)
	}
}

func TestGoalValidation(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "goal", "51"); err == nil || !strings.Contains(err.Error(), "between 1 and 50") {
		t.Fatalf("expected range error, got %v", err)
	}
	out, err := run(t, "goal", "12")
	if err != nil {
		t.Fatalf("goal: %v", err)
	}
	if !strings.Contains(out, "12") {
		t.Fatalf("unexpected output: %s", out)
	}
	out, err = run(t, "settings")
	if err != nil || !strings.Contains(out, "12") {
		t.Fatalf("settings: %v\n%s", err, out)
	}
}

func TestRecordAndStats(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "record", "missing-id", "--rating", "bogus"); err == nil {
		t.Fatalf("expected invalid rating error")
	}
	out, err := run(t, "record", "missing-id", "--rating", "excellent")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(out, "First Sentence") {
		t.Fatalf("expected first sentence unlock, got: %s", out)
	}
	if !strings.Contains(out, "No saved word with id missing-id") {
		t.Fatalf("expected unknown id note, got: %s", out)
	}

	out, err = run(t, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "1/5") {
		t.Fatalf("expected today's progress, got: %s", out)
	}
}

func TestRecordNamesSavedWord(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "save", "lucid"); err != nil {
		t.Fatalf("save: %v", err)
	}
	ctx := context.Background()
	a, cleanup, err := openApp(ctx)
	if err != nil {
		t.Fatalf("openApp: %v", err)
	}
	list, err := a.words.List(ctx)
	cleanup()
	if err != nil || len(list) != 1 {
		t.Fatalf("List: %v %v", list, err)
	}

	out, err := run(t, "record", list[0].ID, "--rating", "good")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(out, "Practiced lucid") {
		t.Fatalf("expected the word in the output, got: %s", out)
	}
}

func TestAIStatusReportsDownloadable(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "ai", "status")
	if err != nil {
		t.Fatalf("ai status: %v", err)
	}
	if !strings.Contains(out, "downloadable") {
		t.Fatalf("unexpected status output: %s", out)
	}
	if _, err := run(t, "example", "word"); err == nil {
		t.Fatalf("example should fail while the model is missing")
	}
}

func TestExportAndReset(t *testing.T) {
	dir := setupEnv(t)

	if _, err := run(t, "save", "lucid"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := run(t, "export", "--dir", dir); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := run(t, "export", "--xlsx", "--dir", dir); err != nil {
		t.Fatalf("export xlsx: %v", err)
	}
	jsonFiles, _ := filepath.Glob(filepath.Join(dir, "word-learner-export-*.json"))
	xlsxFiles, _ := filepath.Glob(filepath.Join(dir, "word-learner-export-*.xlsx"))
	if len(jsonFiles) != 1 || len(xlsxFiles) != 1 {
		t.Fatalf("exports: json=%v xlsx=%v", jsonFiles, xlsxFiles)
	}
	data, err := os.ReadFile(jsonFiles[0])
	if err != nil || !strings.Contains(string(data), `"exportDate"`) {
		t.Fatalf("export content: %v %s", err, data)
	}

	if _, err := run(t, "reset"); err == nil {
		t.Fatalf("reset without --yes should fail")
	}
	if _, err := run(t, "reset", "--yes"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	out, err := run(t, "import", xlsxFiles[0])
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Created") {
		t.Fatalf("unexpected import output: %s", out)
	}
	out, _ = run(t, "words")
	if !strings.Contains(out, "lucid") {
		t.Fatalf("imported word missing: %s", out)
	}
}

func TestErrorsCommands(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "errors", "list")
	if err != nil || !strings.Contains(out, "No errors logged") {
		t.Fatalf("errors list: %v %s", err, out)
	}
	if _, err := run(t, "errors", "clear"); err != nil {
		t.Fatalf("errors clear: %v", err)
	}
}

func TestRemindOnce(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "remind")
	if err != nil {
		t.Fatalf("remind: %v", err)
	}
	if !strings.Contains(out, "Reminder sent") {
		t.Fatalf("unexpected output: %s", out)
	}
}
