package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/ui"
)

func newAICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Inspect or prepare the AI model",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the AI model can be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp := a.dispatcher.Handle(ctx, dispatch.CheckAI{})
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconRobot, "AI"))
			fmt.Fprintln(out, ui.LabelValue("Model", a.cfg.AIModel))
			fmt.Fprintln(out, ui.LabelValue("Endpoint", a.cfg.AIBaseURL))
			if resp.Available != nil && *resp.Available {
				fmt.Fprintln(out, ui.LabelValue("Status", ui.Good.Render(string(resp.Status))))
				return nil
			}
			fmt.Fprintln(out, ui.LabelValue("Status", ui.Warn.Render(string(resp.Status))))
			fmt.Fprintln(out, ui.Muted.Render(resp.Reason))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "download",
		Short: "Create the AI session so the model is ready for practice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := a.do(ctx, dispatch.DownloadAI{}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" AI model is ready"))
			return nil
		},
	})
	return cmd
}
