package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"api_key", "sk-123", "word", "go", "TELEGRAM_TOKEN", "abc", "dangling"})
	want := []interface{}{"api_key", "[REDACTED]", "word", "go", "TELEGRAM_TOKEN", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kv[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := Nop().With("component", "test")
	l.Info("hello", "n", 1)
	l.Sync()
}
