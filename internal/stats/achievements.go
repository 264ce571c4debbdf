package stats

import "github.com/example/wordlearner/pkg/models"

// Achievement ids
const (
	AchievementFirstWord     = "first_word"
	AchievementFirstSentence = "first_sentence"
	AchievementStreak3       = "streak_3"
	AchievementStreak7       = "streak_7"
	AchievementStreak30      = "streak_30"
	AchievementSentences10   = "sentences_10"
	AchievementSentences50   = "sentences_50"
	AchievementSentences100  = "sentences_100"
	AchievementPerfect10     = "perfect_10"
)

// Achievement represents a badge the learner can earn.
type Achievement struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}

// Progress is everything the achievement predicates look at.
type Progress struct {
	WordCount int
	Stats     *models.Stats
}

type rule struct {
	id, name, icon string
	earned         func(Progress) bool
}

func wordCountAtLeast(n int) func(Progress) bool {
	return func(p Progress) bool { return p.WordCount >= n }
}

func totalAtLeast(n int) func(Progress) bool {
	return func(p Progress) bool { return p.Stats.TotalSentences >= n }
}

func streakAtLeast(n int) func(Progress) bool {
	return func(p Progress) bool { return p.Stats.CurrentStreak >= n }
}

func excellentAtLeast(n int) func(Progress) bool {
	return func(p Progress) bool { return p.Stats.ExcellentCount >= n }
}

var rules = []rule{
	{AchievementFirstWord, "First Word", "📖", wordCountAtLeast(1)},
	{AchievementFirstSentence, "First Sentence", "✍️", totalAtLeast(1)},
	{AchievementStreak3, "3 Day Streak", "🔥", streakAtLeast(3)},
	{AchievementStreak7, "7 Day Streak", "💪", streakAtLeast(7)},
	{AchievementStreak30, "30 Day Streak", "🏆", streakAtLeast(30)},
	{AchievementSentences10, "10 Sentences", "📝", totalAtLeast(10)},
	{AchievementSentences50, "50 Sentences", "📚", totalAtLeast(50)},
	{AchievementSentences100, "100 Sentences", "🎯", totalAtLeast(100)},
	{AchievementPerfect10, "Perfect 10", "⭐", excellentAtLeast(10)},
}

// IsKnownAchievement reports whether id names an achievement in the catalogue
func IsKnownAchievement(id string) bool {
	for _, r := range rules {
		if r.id == id {
			return true
		}
	}
	return false
}

// unlock adds id to the unlocked set. It returns false if it was already there.
func unlock(s *models.Stats, id string) bool {
	if s.HasAchievement(id) {
		return false
	}
	s.Achievements = append(s.Achievements, id)
	return true
}

// applyAchievements unlocks every achievement whose condition holds and
// returns the ids unlocked by this call.
func applyAchievements(p Progress) []string {
	var unlocked []string
	for _, r := range rules {
		if r.earned(p) && unlock(p.Stats, r.id) {
			unlocked = append(unlocked, r.id)
		}
	}
	return unlocked
}

// Achievements returns the full catalogue with unlocked flags.
func Achievements(s *models.Stats) []Achievement {
	out := make([]Achievement, 0, len(rules))
	for _, r := range rules {
		out = append(out, Achievement{ID: r.id, Name: r.name, Icon: r.icon, Unlocked: s.HasAchievement(r.id)})
	}
	return out
}

// CountUnlocked returns how many catalogue achievements are unlocked.
func CountUnlocked(s *models.Stats) int {
	count := 0
	for _, a := range Achievements(s) {
		if a.Unlocked {
			count++
		}
	}
	return count
}
