package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/ui"
)

func newSaveCmd() *cobra.Command {
	var snippet, url string

	cmd := &cobra.Command{
		Use:   "save <word>",
		Short: "Save a word with the sentence you found it in",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.SaveWord{Word: strings.Join(args, " "), Context: snippet, URL: url})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Duplicate {
				msg := fmt.Sprintf("%q is already saved", resp.ExistingWord)
				if resp.BaseForm != "" {
					msg = fmt.Sprintf("%q is already saved (same base form: %s)", resp.ExistingWord, resp.BaseForm)
				}
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+msg))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Saved "+resp.Word.Word))
			fmt.Fprintln(out, ui.LabelValue("Base form", resp.Word.BaseForm))
			fmt.Fprintln(out, ui.Muted.Render(resp.Word.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&snippet, "context", "c", "", "Sentence the word appeared in")
	cmd.Flags().StringVarP(&url, "url", "u", "", "Page the word was found on")
	return cmd
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "words",
		Aliases: []string{"list"},
		Short:   "List saved words",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GetWords{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, fmt.Sprintf("Words (%d)", len(resp.Words))))
			if len(resp.Words) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing saved yet. Try: wordlearner save <word>"))
				return nil
			}
			for _, w := range resp.Words {
				practiced := "never practiced"
				if w.LastPracticed != nil {
					practiced = fmt.Sprintf("practiced %dx, last %s", w.PracticeCount, w.LastPracticed.Format("2006-01-02"))
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(w.Word), ui.Muted.Render("("+practiced+")"), ui.Muted.Render(w.ID))
				if w.Context != "" && w.Context != w.Word {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render("“"+w.Context+"”"))
				}
			}
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved word",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("word id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.do(ctx, dispatch.DeleteWord{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted"))
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example <word>",
		Short: "Ask the AI for an example sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GenerateSentence{Word: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" "+resp.Content)
			return nil
		},
	}
}
