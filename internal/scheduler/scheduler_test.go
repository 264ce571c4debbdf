package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/wordlearner/internal/database"
	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/internal/notify"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/pkg/models"
)

type recordingNotifier struct {
	sent []notify.Reminder
}

func (n *recordingNotifier) SendReminder(ctx context.Context, r notify.Reminder) error {
	n.sent = append(n.sent, r)
	return nil
}

func newTestScheduler(t *testing.T, now time.Time, seed *models.Stats) (*Scheduler, *recordingNotifier) {
	t.Helper()
	store, err := database.ConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "sched.db"))
	if err != nil {
		t.Fatalf("ConnectSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	repo := database.NewStatisticsRepository(store)
	if seed != nil {
		if err := repo.Save(context.Background(), seed); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	engine := stats.NewEngine(repo, stats.FixedClock{T: now}, logger.Nop(), models.DefaultDailyGoal)
	n := &recordingNotifier{}
	return New(engine, n, 8, 22, logger.Nop()), n
}

func at(day string, hour int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestReminderOutsideWindow(t *testing.T) {
	s, n := newTestScheduler(t, at("2024-03-05", 6), nil)
	sent, err := s.CheckAndSendReminder(context.Background())
	if err != nil || sent || len(n.sent) != 0 {
		t.Fatalf("sent=%v err=%v reminders=%v", sent, err, n.sent)
	}
}

func TestReminderWhenGoalOpen(t *testing.T) {
	seed := &models.Stats{DailyGoal: 5, TodaySentences: 2, CurrentStreak: 4, LastActiveDate: "2024-03-05", Achievements: []string{}}
	s, n := newTestScheduler(t, at("2024-03-05", 12), seed)

	sent, err := s.CheckAndSendReminder(context.Background())
	if err != nil || !sent {
		t.Fatalf("sent=%v err=%v", sent, err)
	}
	if n.sent[0].Remaining != 3 || n.sent[0].Streak != 4 {
		t.Fatalf("reminder = %+v", n.sent[0])
	}
}

func TestNoReminderWhenGoalReached(t *testing.T) {
	seed := &models.Stats{DailyGoal: 3, TodaySentences: 3, LastActiveDate: "2024-03-05", Achievements: []string{}}
	s, n := newTestScheduler(t, at("2024-03-05", 20), seed)

	sent, err := s.CheckAndSendReminder(context.Background())
	if err != nil || sent || len(n.sent) != 0 {
		t.Fatalf("sent=%v err=%v", sent, err)
	}
}

func TestReminderCountsFromZeroOnNewDay(t *testing.T) {
	seed := &models.Stats{DailyGoal: 3, TodaySentences: 3, CurrentStreak: 9, LastActiveDate: "2024-03-01", Achievements: []string{}}
	s, n := newTestScheduler(t, at("2024-03-05", 23), seed)

	sent, err := s.RunManualCheck(context.Background())
	if err != nil || !sent {
		t.Fatalf("sent=%v err=%v", sent, err)
	}
	if n.sent[0].Remaining != 3 || n.sent[0].Streak != 0 {
		t.Fatalf("reminder = %+v", n.sent[0])
	}
}

func TestInWindowBounds(t *testing.T) {
	s := New(nil, nil, 8, 22, nil)
	for hour, want := range map[int]bool{7: false, 8: true, 15: true, 22: true, 23: false} {
		if got := s.InWindow(hour); got != want {
			t.Errorf("InWindow(%d) = %v, want %v", hour, got, want)
		}
	}
	s = New(nil, nil, -1, 99, nil)
	if s.startHour != DefaultNotificationStartHour || s.endHour != DefaultNotificationEndHour {
		t.Errorf("invalid hours not replaced: %d-%d", s.startHour, s.endHour)
	}
	s = New(nil, nil, 22, 8, nil)
	if s.startHour != DefaultNotificationStartHour || s.endHour != DefaultNotificationEndHour {
		t.Errorf("inverted window not replaced: %d-%d", s.startHour, s.endHour)
	}
}
