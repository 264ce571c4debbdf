package models

// DefaultDailyGoal is the number of sentences per day a fresh install aims for
const DefaultDailyGoal = 5

// Daily goal bounds accepted at the settings boundary
const (
	MinDailyGoal = 1
	MaxDailyGoal = 50
)

// Stats is the singleton practice statistics record
type Stats struct {
	DailyGoal      int      `json:"dailyGoal"`
	CurrentStreak  int      `json:"currentStreak"`
	LongestStreak  int      `json:"longestStreak"`
	TodaySentences int      `json:"todaySentences"`
	TotalSentences int      `json:"totalSentences"`
	LastActiveDate string   `json:"lastActiveDate"` // YYYY-MM-DD, empty until the first practice
	ExcellentCount int      `json:"excellentCount"`
	Achievements   []string `json:"achievements"`
}

// NewStats returns the install-time defaults
func NewStats(dailyGoal int) *Stats {
	if dailyGoal < MinDailyGoal || dailyGoal > MaxDailyGoal {
		dailyGoal = DefaultDailyGoal
	}
	return &Stats{
		DailyGoal:    dailyGoal,
		Achievements: []string{},
	}
}

// HasAchievement reports whether id is already unlocked
func (s *Stats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// StatsUpdate carries the fields of a settings update. Nil fields are left untouched.
type StatsUpdate struct {
	DailyGoal      *int    `json:"dailyGoal,omitempty"`
	CurrentStreak  *int    `json:"currentStreak,omitempty"`
	LongestStreak  *int    `json:"longestStreak,omitempty"`
	TodaySentences *int    `json:"todaySentences,omitempty"`
	TotalSentences *int    `json:"totalSentences,omitempty"`
	LastActiveDate *string `json:"lastActiveDate,omitempty"`
	ExcellentCount *int    `json:"excellentCount,omitempty"`
}
