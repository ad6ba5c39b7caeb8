package cmd

import (
	logger "github.com/PolarWolf314/zlang/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	profile string
	logFile string
	Logger  logger.Logger

	NotesCmd = &cobra.Command{
		Use:   "notes",
		Short: "Save, find and manage encrypted notes",
		Long: `Stores short notes with optional tags in an encrypted file per profile.

Every change is written to disk before the command returns.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			setupLogging()
			applyDataDir()
			Logger.Debugf("Initializing notes command with verbose=%t, debug=%t, profile=%q", verbose, debug, profile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLogging()
		},
	}
)

func init() {
	NotesCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	NotesCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	NotesCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "use this profile instead of the active one")
	NotesCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write store logs to this rotated file")

	NotesCmd.AddCommand(saveCmd)
	NotesCmd.AddCommand(getCmd)
	NotesCmd.AddCommand(showCmd)
	NotesCmd.AddCommand(searchCmd)
	NotesCmd.AddCommand(tagCmd)
	NotesCmd.AddCommand(undoCmd)
	NotesCmd.AddCommand(exportCmd)
	NotesCmd.AddCommand(importCmd)
}

// GetNotesCmd returns the NotesCmd for testing.
func GetNotesCmd() *cobra.Command {
	return NotesCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	profile = ""
	logFile = ""
	resetSaveCommandState()
	resetExportCommandState()
	resetImportCommandState()
	resetOnboardCommandState()
	resetRecoverCommandState()
	resetLogCommandState()
	resetNetworkCommandState()
	resetFlagsChanged(NotesCmd)
	resetFlagsChanged(VaultCmd)
}

// resetFlagsChanged clears pflag's Changed marks so prompts that check for
// explicitly set flags behave the same on every run.
func resetFlagsChanged(c *cobra.Command) {
	unset := func(f *pflag.Flag) { f.Changed = false }
	c.Flags().VisitAll(unset)
	c.PersistentFlags().VisitAll(unset)
	for _, sub := range c.Commands() {
		resetFlagsChanged(sub)
	}
}
