package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconBook    = "📖"
	IconPencil  = "✍️"
	IconFire    = "🔥"
	IconTarget  = "🎯"
	IconTrophy  = "🏆"
	IconSparkle = "✨"
	IconRobot   = "🤖"
	IconDone    = "✅"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
	IconBox     = "📦"
)

var (
	cPrimary = lipgloss.Color("33")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RatingText colors an evaluation rating
func RatingText(rating string) string {
	switch rating {
	case "excellent":
		return Gold.Render("⭐ excellent")
	case "good":
		return Good.Render("👍 good")
	case "needs_improvement":
		return Warn.Render("📝 needs improvement")
	default:
		return Muted.Render(rating)
	}
}

// GoalBar renders today's progress toward the daily goal, e.g. [■■■□□] 3/5
func GoalBar(done, goal int) string {
	if goal <= 0 {
		return Muted.Render("no goal")
	}
	filled := done
	if filled > goal {
		filled = goal
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("■", filled) + strings.Repeat("□", goal-filled)
	style := H2
	if done >= goal {
		style = Good
	}
	return fmt.Sprintf("%s %d/%d", style.Render("["+bar+"]"), done, goal)
}

// AchievementLine renders one catalogue entry
func AchievementLine(icon, name string, unlocked bool) string {
	if unlocked {
		return fmt.Sprintf("%s %s", icon, Gold.Render(name))
	}
	return fmt.Sprintf("%s %s", IconLock, Muted.Render(name))
}
