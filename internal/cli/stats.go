package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/internal/ui"
	"github.com/example/wordlearner/pkg/models"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's progress, streaks and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GetStats{})
			if err != nil {
				return err
			}
			s := resp.Stats
			today := 0
			if s.LastActiveDate == stats.Today(a.engine.Clock()) {
				today = s.TodaySentences
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Progress"))
			fmt.Fprintln(out, ui.LabelValue("Today", ui.GoalBar(today, s.DailyGoal)))
			fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%s %d", ui.IconFire, s.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", s.LongestStreak))
			fmt.Fprintln(out, ui.LabelValue("Total sentences", s.TotalSentences))
			fmt.Fprintln(out, ui.LabelValue("Excellent", s.ExcellentCount))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", stats.CountUnlocked(s), len(stats.Achievements(s)))))
			return nil
		},
	}
}

func newGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal <sentences-per-day>",
		Short: fmt.Sprintf("Set the daily goal (%d-%d)", models.MinDailyGoal, models.MaxDailyGoal),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal must be a number: %w", err)
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.UpdateStats{Updates: models.StatsUpdate{DailyGoal: &goal}})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Daily goal set to ")+strconv.Itoa(resp.Stats.DailyGoal))
			return nil
		},
	}
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GetAchievements{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, ach := range resp.Achievements {
				fmt.Fprintln(out, "- "+ui.AchievementLine(ach.Icon, ach.Name, ach.Unlocked))
			}
			return nil
		},
	}
}
