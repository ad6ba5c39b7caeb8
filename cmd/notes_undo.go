package cmd

import (
	"context"
	"strings"

	"github.com/PolarWolf314/zlang/internal/memory"
	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent save",
	Long: `Deletes the note written by the most recent save.

Undo only removes: if a key was saved twice, undoing the second save deletes
the key rather than restoring the first value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting undo command")
		spinner, cleanup := startSpinner("Undoing last change...", verbose)
		defer cleanup()

		result, err := workflows.Undo(context.Background(), workflows.UndoOptions{Profile: profile})
		if err != nil {
			return reportError(spinner, err)
		}

		if !result.Undone {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Nothing to undo"
			return nil
		}

		if key, ok := strings.CutPrefix(result.Entry, memory.SavePrefix); ok {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Removed " + ui.Key.Sprint(key)
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Undid " + ui.Muted.Sprint(result.Entry)
		}
		return nil
	},
}
