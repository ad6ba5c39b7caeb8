package cmd

import (
	"io"
	"os"

	logger "github.com/PolarWolf314/zlang/internal/logging"
	"github.com/PolarWolf314/zlang/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// promptInput feeds the interactive prompts.
	promptInput io.Reader = os.Stdin

	// isInteractive reports whether prompts may be shown.
	isInteractive = utils.IsTerminal

	VaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Set up, recover and configure the encrypted store",
		Long:  `Provides onboarding, key recovery, profile switching, connectivity checks and the audit log.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			setupLogging()
			applyDataDir()
			Logger.Debugf("Initializing vault command with verbose=%t, debug=%t", verbose, debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogging()
		},
	}
)

func init() {
	VaultCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	VaultCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	VaultCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write store logs to this rotated file")

	VaultCmd.AddCommand(onboardCmd)
	VaultCmd.AddCommand(recoverCmd)
	VaultCmd.AddCommand(profileCmd)
	VaultCmd.AddCommand(syncCmd)
	VaultCmd.AddCommand(networkTestCmd)
	VaultCmd.AddCommand(logCmd)
}

// GetVaultCmd returns the VaultCmd for testing.
func GetVaultCmd() *cobra.Command {
	return VaultCmd
}

func newPrompter() *utils.Prompter {
	return utils.NewPrompter(promptInput, os.Stdout)
}
