package cmd

import (
	"context"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command")
		spinner, cleanup := startSpinner("Loading note...", verbose)
		defer cleanup()

		result, err := workflows.Get(context.Background(), workflows.GetOptions{
			Key:     args[0],
			Profile: profile,
		})
		if err != nil {
			return reportError(spinner, err)
		}

		if !result.Found {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No note found for " + ui.Key.Sprint(result.Key)
			return nil
		}
		spinner.FinalMSG = ui.FormatNote(result.Key, result.Note)
		return nil
	},
}
