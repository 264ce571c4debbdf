package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/wordlearner/internal/dispatch"
	"github.com/example/wordlearner/internal/excel"
	"github.com/example/wordlearner/internal/ui"
	"github.com/example/wordlearner/pkg/models"
)

func newExportCmd() *cobra.Command {
	var dir string
	var xlsx bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Back up words and statistics to a JSON file (or words to a spreadsheet)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.ExportData{})
			if err != nil {
				return err
			}

			now := a.engine.Clock().Now()
			var path string
			if xlsx {
				path = filepath.Join(dir, excel.ExportFileName(now, "xlsx"))
				if err := excel.ExportXLSX(path, resp.Export.Words); err != nil {
					return err
				}
			} else {
				path = filepath.Join(dir, excel.ExportFileName(now, "json"))
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				if err := excel.WriteJSON(f, *resp.Export); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to close export file: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconBox+" Exported "+fmt.Sprint(len(resp.Export.Words))+" words to ")+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", ".", "Directory to write the export to")
	cmd.Flags().BoolVar(&xlsx, "xlsx", false, "Write the words as an Excel spreadsheet")
	return cmd
}

func newImportCmd() *cobra.Command {
	config := excel.DefaultImportConfig()

	cmd := &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Import words from a spreadsheet or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			config.FilePath = args[0]
			result, err := excel.ImportWords(ctx, config, a.words)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Import"))
			fmt.Fprintln(out, ui.LabelValue("Processed", result.TotalProcessed))
			fmt.Fprintln(out, ui.LabelValue("Created", ui.Good.Render(fmt.Sprint(result.Created))))
			fmt.Fprintln(out, ui.LabelValue("Duplicates", result.Duplicates))
			fmt.Fprintln(out, ui.LabelValue("Skipped", result.Skipped))
			for _, e := range result.Errors {
				fmt.Fprintln(out, ui.Bad.Render(ui.IconWarn+" "+e))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&config.SheetName, "sheet", "", "Sheet to read (default: first sheet)")
	cmd.Flags().StringVar(&config.WordColumn, "word-col", config.WordColumn, "Column holding the word")
	cmd.Flags().StringVar(&config.ContextColumn, "context-col", config.ContextColumn, "Column holding the context sentence")
	cmd.Flags().StringVar(&config.SourceColumn, "url-col", config.SourceColumn, "Column holding the source URL")
	cmd.Flags().IntVar(&config.StartRow, "start-row", config.StartRow, "First row to import (1-based)")
	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool
	var goal int

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all words, statistics and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes everything; pass --yes to confirm")
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			req := dispatch.ClearData{}
			if cmd.Flags().Changed("goal") {
				req.DailyGoal = &goal
			}
			if _, err := a.do(ctx, req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting all data")
	cmd.Flags().IntVar(&goal, "goal", models.DefaultDailyGoal, "Daily goal to start over with (default: keep the current one)")
	return cmd
}

func newSettingsCmd() *cobra.Command {
	var language string
	var goal int

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.do(ctx, dispatch.GetSettings{})
			if err != nil {
				return err
			}

			languageChanged := cmd.Flags().Changed("language")
			goalChanged := cmd.Flags().Changed("goal")
			if languageChanged || goalChanged {
				req := dispatch.SaveSettings{Settings: *resp.Settings}
				if languageChanged {
					req.Settings.TargetLanguage = language
				}
				if goalChanged {
					req.DailyGoal = &goal
				}
				if _, err := a.do(ctx, req); err != nil {
					return err
				}
				if resp, err = a.do(ctx, dispatch.GetSettings{}); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("⚙️", "Settings"))
			fmt.Fprintln(out, ui.LabelValue("Target language", resp.Settings.TargetLanguage))
			fmt.Fprintln(out, ui.LabelValue("Daily goal", resp.Stats.DailyGoal))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Target language code, e.g. en, de, es")
	cmd.Flags().IntVarP(&goal, "goal", "g", models.DefaultDailyGoal, fmt.Sprintf("Sentences per day (%d-%d)", models.MinDailyGoal, models.MaxDailyGoal))
	return cmd
}
