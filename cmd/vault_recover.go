package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	recoverBackup string
	recoverOldKey string
	recoverYes    bool
)

func init() {
	recoverCmd.Flags().StringVar(&recoverBackup, "backup", "", "exported backup to restore into the active profile")
	recoverCmd.Flags().StringVar(&recoverOldKey, "old-key", "", "copy of the master key the backup was exported under")
	recoverCmd.Flags().BoolVarP(&recoverYes, "yes", "y", false, "do not ask for confirmation")
}

// resetRecoverCommandState resets the recover command's global state for testing.
func resetRecoverCommandState() {
	recoverBackup = ""
	recoverOldKey = ""
	recoverYes = false
}

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Replace a lost master key",
	Long: `Generates a new master key using the recovery token created at onboarding.

The active profile is rewritten under the new key: empty, or restored from
--backup. A backup can only be restored with the key it was exported under,
given with --old-key or still present as the current master key.

Other profiles stay encrypted under the old key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting recover command")

		if !recoverYes && isInteractive() {
			ok, err := newPrompter().Confirm("This replaces the master key. Continue? [y/N]: ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read confirmation: %w", err)
			}
			if !ok {
				fmt.Println(ui.Warning.Sprint("⚠") + " Recovery cancelled")
				return nil
			}
		}

		spinner, cleanup := startSpinner("Recovering...", verbose)
		defer cleanup()

		result, err := workflows.Recover(context.Background(), workflows.RecoverOptions{
			BackupPath: recoverBackup,
			OldKeyPath: recoverOldKey,
		})
		if err != nil {
			return reportError(spinner, err)
		}

		msg := ui.Success.Sprint("✓") + " Generated a new master key\n"
		if result.Restored {
			msg += ui.Success.Sprint("✓") + fmt.Sprintf(" Restored %d note(s) into ", result.RestoredNotes) +
				ui.Highlight.Sprint(result.Profile)
		} else {
			msg += ui.Info.Sprint("→") + " Profile " + ui.Highlight.Sprint(result.Profile) + " starts empty"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
