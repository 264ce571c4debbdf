package notify

import (
	"context"
	"fmt"

	"github.com/example/wordlearner/internal/logger"
)

// Reminder is a nudge to finish today's practice
type Reminder struct {
	Remaining int
	DailyGoal int
	Streak    int
}

// Text renders the reminder as a single message
func (r Reminder) Text() string {
	noun := "sentences"
	if r.Remaining == 1 {
		noun = "sentence"
	}
	text := fmt.Sprintf("✍️ %d %s left to reach today's goal of %d.", r.Remaining, noun, r.DailyGoal)
	if r.Streak > 0 {
		text += fmt.Sprintf(" Keep your %d day streak going! 🔥", r.Streak)
	}
	return text
}

// Log writes reminders to the application log. Used when no chat is configured.
type Log struct {
	log *logger.Logger
}

func NewLog(log *logger.Logger) *Log {
	if log == nil {
		log = logger.Nop()
	}
	return &Log{log: log.With("component", "notify")}
}

func (l *Log) SendReminder(ctx context.Context, r Reminder) error {
	l.log.Info(r.Text(), "remaining", r.Remaining, "streak", r.Streak)
	return nil
}
