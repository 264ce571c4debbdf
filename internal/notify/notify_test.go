package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReminderText(t *testing.T) {
	tests := []struct {
		r    Reminder
		want []string
	}{
		{Reminder{Remaining: 1, DailyGoal: 5}, []string{"1 sentence left", "goal of 5"}},
		{Reminder{Remaining: 3, DailyGoal: 5, Streak: 4}, []string{"3 sentences left", "4 day streak"}},
	}
	for _, tt := range tests {
		got := tt.r.Text()
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("Text() = %q, missing %q", got, w)
			}
		}
	}
	if strings.Contains(Reminder{Remaining: 2, DailyGoal: 2}.Text(), "streak") {
		t.Errorf("no streak should be mentioned without one")
	}
}

func TestTelegramSendReminder(t *testing.T) {
	var sentText, sentChat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Words","username":"words_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			_ = r.ParseForm()
			sentText = r.FormValue("text")
			sentChat = r.FormValue("chat_id")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tg, err := NewTelegramWithClient("test-token", srv.URL+"/bot%s/%s", 42, srv.Client())
	if err != nil {
		t.Fatalf("NewTelegramWithClient: %v", err)
	}
	if err := tg.SendReminder(context.Background(), Reminder{Remaining: 2, DailyGoal: 5, Streak: 3}); err != nil {
		t.Fatalf("SendReminder: %v", err)
	}
	if sentChat != "42" || !strings.Contains(sentText, "2 sentences left") {
		t.Fatalf("sent chat=%q text=%q", sentChat, sentText)
	}
}

func TestNewTelegramValidates(t *testing.T) {
	if _, err := NewTelegram("", 1); err == nil {
		t.Errorf("expected error for empty token")
	}
	if _, err := NewTelegram("token", 0); err == nil {
		t.Errorf("expected error for missing chat id")
	}
}
