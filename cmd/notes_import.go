package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "show what would be imported without changing anything")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importDryRun = false
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace notes with an exported backup",
	Long: `Replaces every note in the profile with the contents of a backup made by
export. Nothing is merged. The backup must have been exported under the
current master key.

Use --dry-run to check a backup without changing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		spinner, cleanup := startSpinner("Importing notes...", verbose)
		defer cleanup()

		result, err := workflows.Import(context.Background(), workflows.ImportOptions{
			InputPath: args[0],
			Profile:   profile,
			DryRun:    importDryRun,
		})
		if err != nil {
			return reportError(spinner, err)
		}

		if result.DryRun {
			msg := ui.Info.Sprint("→") + fmt.Sprintf(" Would import %d note(s) into ", result.NoteCount) +
				ui.Highlight.Sprint(result.Profile) +
				fmt.Sprintf(" (replacing %d)", result.PreviousCount)
			if result.Unchanged {
				msg = ui.Info.Sprint("→") + " Backup matches the notes in " + ui.Highlight.Sprint(result.Profile) + ", nothing would change"
			}
			spinner.FinalMSG = msg
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Imported %d note(s) into ", result.NoteCount) +
			ui.Highlight.Sprint(result.Profile) +
			fmt.Sprintf(" (replaced %d)", result.PreviousCount)
		return nil
	},
}
