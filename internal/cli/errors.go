package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/ui"
)

func newErrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Show or clear the error log",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the most recent errors, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GetErrors{})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(resp.Errors) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No errors logged"))
				return nil
			}
			for _, e := range resp.Errors {
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(e.Timestamp.Format("2006-01-02 15:04:05")), ui.Bad.Render(e.Message), ui.Muted.Render(e.Context))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all logged errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.do(ctx, dispatch.ClearErrors{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Error log cleared"))
			return nil
		},
	})
	return cmd
}
