package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/stats"
	"github.com/example/wordlearner/internal/ui"
	"github.com/example/wordlearner/pkg/models"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <word> <sentence>",
		Short: "Grade a sentence without recording practice",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.EvaluateSentence{Word: args[0], UserSentence: strings.Join(args[1:], " ")})
			if err != nil {
				return err
			}
			printEvaluation(cmd.OutOrStdout(), resp.Evaluation)
			return nil
		},
	}
}

func newPracticeCmd() *cobra.Command {
	var sentence string

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Write a sentence with one of your least practiced words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			resp, err := a.do(ctx, dispatch.GetRandomWord{})
			if err != nil {
				return err
			}
			w := resp.Word

			fmt.Fprintln(out, ui.Heading(ui.IconPencil, "Practice"))
			fmt.Fprintln(out, ui.LabelValue("Word", ui.Gold.Render(w.Word)))
			if w.Context != "" && w.Context != w.Word {
				fmt.Fprintln(out, ui.LabelValue("Seen in", ui.Muted.Render(w.Context)))
			}
			if w.ExampleSentence != "" {
				fmt.Fprintln(out, ui.LabelValue("Example", w.ExampleSentence))
			}

			if sentence == "" {
				fmt.Fprint(out, ui.Key.Render("Your sentence: "))
				sentence, err = readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			if sentence == "" {
				return errors.New("no sentence written")
			}

			return evaluateAndRecord(ctx, cmd, a, w.ID, w.Word, sentence)
		},
	}

	cmd.Flags().StringVarP(&sentence, "sentence", "s", "", "Sentence to submit instead of reading it from stdin")
	return cmd
}

func newRecordCmd() *cobra.Command {
	var rating string

	cmd := &cobra.Command{
		Use:   "record <word-id>",
		Short: "Record a practice without AI grading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := models.Rating(rating)
			if !r.IsValid() {
				return fmt.Errorf("rating must be excellent, good or needs_improvement, got %q", rating)
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			w, found, err := a.words.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if found {
				fmt.Fprintln(out, ui.Heading(ui.IconPencil, "Practiced "+w.Word))
			} else {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconWarn+" No saved word with id "+args[0]+", counting the practice only"))
			}

			resp, err := a.do(ctx, dispatch.RecordPractice{WordID: args[0], Rating: r})
			if err != nil {
				return err
			}
			printPracticeResult(out, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rating, "rating", "r", string(models.RatingGood), "Rating (excellent|good|needs_improvement)")
	return cmd
}

func evaluateAndRecord(ctx context.Context, cmd *cobra.Command, a *app, wordID, word, sentence string) error {
	out := cmd.OutOrStdout()

	resp, err := a.do(ctx, dispatch.EvaluateSentence{Word: word, UserSentence: sentence})
	if err != nil {
		return err
	}
	printEvaluation(out, resp.Evaluation)

	resp, err = a.do(ctx, dispatch.RecordPractice{WordID: wordID, Rating: resp.Evaluation.Rating})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "")
	printPracticeResult(out, resp)
	return nil
}

func printEvaluation(out io.Writer, e *models.Evaluation) {
	verdict := ui.Good.Render("correct")
	if !e.IsCorrect {
		verdict = ui.Bad.Render("not quite")
	}
	fmt.Fprintf(out, "%s %s %s\n", ui.IconRobot, verdict, ui.RatingText(string(e.Rating)))
	if e.Feedback != "" {
		fmt.Fprintln(out, ui.LabelValue("Feedback", e.Feedback))
	}
	if e.Suggestion != nil && *e.Suggestion != "" {
		fmt.Fprintln(out, ui.LabelValue("Suggestion", *e.Suggestion))
	}
}

func printPracticeResult(out io.Writer, resp dispatch.Response) {
	s := resp.Stats
	fmt.Fprintln(out, ui.LabelValue("Today", ui.GoalBar(s.TodaySentences, s.DailyGoal)))
	fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, s.CurrentStreak)))
	for _, id := range resp.Unlocked {
		for _, ach := range stats.Achievements(s) {
			if ach.ID == id {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Achievement unlocked: ")+ach.Icon+" "+ach.Name)
			}
		}
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
