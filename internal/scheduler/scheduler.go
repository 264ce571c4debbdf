package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/internal/notify"
	"github.com/example/wordlearner/internal/stats"
)

// Default notification window, local time
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier delivers goal reminders
type Notifier interface {
	SendReminder(ctx context.Context, r notify.Reminder) error
}

// Scheduler sends an hourly reminder while today's goal is not reached
type Scheduler struct {
	scheduler *gocron.Scheduler
	engine    *stats.Engine
	notifier  Notifier
	log       *logger.Logger

	startHour int
	endHour   int
}

// New creates a new scheduler instance. Hours outside 0-23, or a start after
// the end, fall back to the defaults.
func New(engine *stats.Engine, notifier Notifier, startHour, endHour int, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if startHour < 0 || startHour > 23 {
		startHour = DefaultNotificationStartHour
	}
	if endHour < 0 || endHour > 23 {
		endHour = DefaultNotificationEndHour
	}
	if startHour > endHour {
		startHour, endHour = DefaultNotificationStartHour, DefaultNotificationEndHour
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		engine:    engine,
		notifier:  notifier,
		log:       log.With("component", "scheduler"),
		startHour: startHour,
		endHour:   endHour,
	}
}

// Start begins running the hourly check without blocking
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Hour().Do(s.runScheduledCheck); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}
	s.scheduler.StartAsync()
	s.log.Info("reminders scheduled", "start_hour", s.startHour, "end_hour", s.endHour)
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runScheduledCheck() {
	if _, err := s.CheckAndSendReminder(context.Background()); err != nil {
		s.log.Error("reminder check failed", "error", err)
	}
}

// InWindow reports whether hour is within the notification hours
func (s *Scheduler) InWindow(hour int) bool {
	return hour >= s.startHour && hour <= s.endHour
}

// CheckAndSendReminder sends a reminder when the current hour is within the
// notification window and today's goal is not reached yet
func (s *Scheduler) CheckAndSendReminder(ctx context.Context) (bool, error) {
	hour := s.engine.Clock().Now().Hour()
	if !s.InWindow(hour) {
		s.log.Debug("outside notification hours, skipping reminder",
			"hour", hour, "start_hour", s.startHour, "end_hour", s.endHour)
		return false, nil
	}
	return s.RunManualCheck(ctx)
}

// RunManualCheck sends a reminder if today's goal is not reached, regardless of the hour
func (s *Scheduler) RunManualCheck(ctx context.Context) (bool, error) {
	st, err := s.engine.Get(ctx)
	if err != nil {
		return false, err
	}

	remaining := stats.RemainingOn(st, stats.Today(s.engine.Clock()))
	if remaining == 0 {
		return false, nil
	}

	// a streak only survives today if it was extended yesterday or today
	streak := 0
	if st.LastActiveDate == stats.Today(s.engine.Clock()) || st.LastActiveDate == stats.Yesterday(s.engine.Clock()) {
		streak = st.CurrentStreak
	}

	r := notify.Reminder{Remaining: remaining, DailyGoal: st.DailyGoal, Streak: streak}
	if err := s.notifier.SendReminder(ctx, r); err != nil {
		return false, err
	}
	return true, nil
}
