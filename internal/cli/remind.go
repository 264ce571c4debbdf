package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/ui"
)

func newRemindCmd() *cobra.Command {
	var daemon bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send a reminder if today's goal is not reached yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := a.scheduler()
			if err != nil {
				return err
			}

			if daemon {
				if err := s.Start(); err != nil {
					return err
				}
				defer s.Stop()
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Sending hourly reminders. Press Ctrl+C to stop."))
				<-ctx.Done()
				return nil
			}

			sent, err := s.RunManualCheck(ctx)
			if err != nil {
				return err
			}
			if sent {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Reminder sent"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Today's goal is done, nothing to send"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "Keep running and check every hour within notification hours")
	return cmd
}
