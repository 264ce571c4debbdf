package stats

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/example/wordlearner/internal/database"
	"github.com/example/wordlearner/internal/logger"
	"github.com/example/wordlearner/pkg/models"
)

// Engine owns the practice statistics: daily counters, streaks and achievements.
type Engine struct {
	repo        *database.StatisticsRepository
	clock       Clock
	log         *logger.Logger
	defaultGoal int

	mu sync.Mutex
}

func NewEngine(repo *database.StatisticsRepository, clock Clock, log *logger.Logger, defaultGoal int) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		repo:        repo,
		clock:       clock,
		log:         log.With("component", "stats"),
		defaultGoal: defaultGoal,
	}
}

func (e *Engine) Clock() Clock { return e.clock }

// Get returns the statistics, creating the install defaults on first use.
func (e *Engine) Get(ctx context.Context) (*models.Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.load(ctx)
}

func (e *Engine) load(ctx context.Context) (*models.Stats, error) {
	s, ok, err := e.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return s, nil
	}
	s = models.NewStats(e.defaultGoal)
	if err := e.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	e.log.Info("initialized statistics", "daily_goal", s.DailyGoal)
	return s, nil
}

// Advance applies one practice event to s. today and yesterday are local ISO dates.
func Advance(s *models.Stats, rating models.Rating, today, yesterday string) {
	if s.LastActiveDate != today {
		if s.LastActiveDate == yesterday {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		s.TodaySentences = 0
		s.LastActiveDate = today
	}

	s.TodaySentences++
	s.TotalSentences++

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	if rating == models.RatingExcellent {
		s.ExcellentCount++
	}
}

// RecordPractice counts one written sentence for today and returns the updated
// statistics together with any achievements it unlocked.
func (e *Engine) RecordPractice(ctx context.Context, rating models.Rating, wordCount int) (*models.Stats, []string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.load(ctx)
	if err != nil {
		return nil, nil, err
	}

	Advance(s, rating, Today(e.clock), Yesterday(e.clock))
	unlocked := applyAchievements(Progress{WordCount: wordCount, Stats: s})

	if err := e.repo.Save(ctx, s); err != nil {
		return nil, nil, err
	}

	e.log.Debug("practice recorded",
		"rating", rating,
		"today", s.TodaySentences,
		"streak", s.CurrentStreak,
		"badge", Badge(s),
	)
	for _, id := range unlocked {
		e.log.Info("achievement unlocked", "achievement", id)
	}
	return s, unlocked, nil
}

// CheckAchievements evaluates every predicate against the stored statistics.
// Safe to call any number of times.
func (e *Engine) CheckAchievements(ctx context.Context, wordCount int) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	unlocked := applyAchievements(Progress{WordCount: wordCount, Stats: s})
	if len(unlocked) == 0 {
		return nil, nil
	}
	if err := e.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	for _, id := range unlocked {
		e.log.Info("achievement unlocked", "achievement", id)
	}
	return unlocked, nil
}

// Unlock inserts a single achievement. It returns false when it was already unlocked.
func (e *Engine) Unlock(ctx context.Context, id string) (bool, error) {
	if !IsKnownAchievement(id) {
		return false, fmt.Errorf("unknown achievement %q", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.load(ctx)
	if err != nil {
		return false, err
	}
	if !unlock(s, id) {
		return false, nil
	}
	return true, e.repo.Save(ctx, s)
}

// Update merges the provided fields into the stored statistics without validation.
func (e *Engine) Update(ctx context.Context, u models.StatsUpdate) (*models.Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	merge(s, u)
	if err := e.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func merge(s *models.Stats, u models.StatsUpdate) {
	if u.DailyGoal != nil {
		s.DailyGoal = *u.DailyGoal
	}
	if u.CurrentStreak != nil {
		s.CurrentStreak = *u.CurrentStreak
	}
	if u.LongestStreak != nil {
		s.LongestStreak = *u.LongestStreak
	}
	if u.TodaySentences != nil {
		s.TodaySentences = *u.TodaySentences
	}
	if u.TotalSentences != nil {
		s.TotalSentences = *u.TotalSentences
	}
	if u.LastActiveDate != nil {
		s.LastActiveDate = *u.LastActiveDate
	}
	if u.ExcellentCount != nil {
		s.ExcellentCount = *u.ExcellentCount
	}
}

// Reset reinitializes the statistics to defaults, keeping dailyGoal.
func (e *Engine) Reset(ctx context.Context, dailyGoal int) (*models.Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := models.NewStats(dailyGoal)
	if err := e.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	e.log.Info("statistics reset", "daily_goal", s.DailyGoal)
	return s, nil
}

// Remaining is how many sentences are left to reach today's goal.
func Remaining(s *models.Stats) int {
	if r := s.DailyGoal - s.TodaySentences; r > 0 {
		return r
	}
	return 0
}

// Badge renders the remaining count the way the toolbar badge shows it.
func Badge(s *models.Stats) string {
	r := Remaining(s)
	if r == 0 {
		return "✓"
	}
	return strconv.Itoa(r)
}

// RemainingOn is Remaining as seen on the given date: counters from an
// earlier day do not count toward today's goal.
func RemainingOn(s *models.Stats, today string) int {
	if s.LastActiveDate != today {
		if s.DailyGoal > 0 {
			return s.DailyGoal
		}
		return 0
	}
	return Remaining(s)
}
