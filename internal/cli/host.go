package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newHostCmd() *cobra.Command {
	var reminders bool

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Serve a browser extension over native messaging (stdin/stdout)",
		Long: "host reads length-prefixed JSON requests from stdin and writes one response per request to stdout, " +
			"as browsers expect from a native messaging host. Logs go to stderr.",
		Args: cobra.ArbitraryArgs, // browsers pass the caller origin as an argument
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if reminders {
				s, err := a.scheduler()
				if err != nil {
					return err
				}
				if err := s.Start(); err != nil {
					return err
				}
				defer s.Stop()
			}

			a.log.Info("native messaging host started", "args", args)
			return a.dispatcher.Serve(ctx, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&reminders, "reminders", false, "Also send hourly goal reminders while the host runs")
	return cmd
}
