package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/ui"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordlearner",
		Short:         "Save words while reading, then practice them in sentences",
		Long:          "wordlearner keeps the words you collect, picks the ones you practiced least, grades your sentences with a local AI model and tracks your daily goal, streaks and achievements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	root.AddCommand(
		newSaveCmd(),
		newWordsCmd(),
		newDeleteCmd(),
		newExampleCmd(),
		newEvaluateCmd(),
		newPracticeCmd(),
		newRecordCmd(),
		newStatsCmd(),
		newGoalCmd(),
		newAchievementsCmd(),
		newAICmd(),
		newErrorsCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newSettingsCmd(),
		newHostCmd(),
		newRemindCmd(),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
