package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/zlang/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zlang",
	Short: "zlang - A local, encrypted note store for the command line.",
	Long: `zlang keeps short notes with tags in an encrypted file on this machine.

Features:
  - Save, search and tag notes, encrypted at rest
  - Separate profiles, each with its own store
  - Encrypted backups, and recovery of a lost master key

Usage:
  zlang <command> [flags]

Available Commands:
  notes      Save, find and manage notes
  vault      Onboarding, recovery, profiles and connectivity

Run 'zlang help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to zlang! Run 'zlang vault onboard' to get started, or 'zlang --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.NotesCmd)
	rootCmd.AddCommand(cmd.VaultCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
