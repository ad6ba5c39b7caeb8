package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var exportOutputPath string

func init() {
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path for the backup (default: zlang-<profile>-YYYY-MM-DD.bin)")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportOutputPath = ""
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export notes to an encrypted backup",
	Long: `Writes the profile's notes to a standalone encrypted file.

The backup is encrypted under the current master key. Keep a copy of the key
(or the recovery token) to be able to restore it.

Examples:
  zlang notes export
  zlang notes export /backups/notes.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Exporting notes...", verbose)
		defer cleanup()

		outputPath := exportOutputPath
		if len(args) == 1 {
			outputPath = args[0]
		}

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			OutputPath: outputPath,
			Profile:    profile,
		})
		if err != nil {
			return reportError(spinner, err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Exported %d note(s) to ", result.NoteCount) +
			ui.Path.Sprint(result.OutputPath) + "\n\n" +
			ui.Info.Sprint("Note:") + " The backup is encrypted. The master key is NOT included."
		return nil
	},
}
