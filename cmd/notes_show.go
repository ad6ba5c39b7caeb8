package cmd

import (
	"context"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List every note in the profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList("Loading notes...", workflows.Show, "", "No notes saved yet")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Find notes containing a keyword",
	Long: `Lists notes whose key, value or any tag contains the keyword.

Matching is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList("Searching notes...", workflows.Search, args[0], "No notes match "+args[0])
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <tag>",
	Short: "List notes carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList("Filtering notes...", workflows.FilterByTag, args[0], "No notes tagged "+args[0])
	},
}

type listWorkflow func(ctx context.Context, opts workflows.ListOptions) (*workflows.ListResult, error)

func runList(message string, wf listWorkflow, query, emptyMsg string) error {
	spinner, cleanup := startSpinner(message, verbose)
	defer cleanup()

	result, err := wf(context.Background(), workflows.ListOptions{
		Query:   query,
		Profile: profile,
	})
	if err != nil {
		return reportError(spinner, err)
	}

	Logger.Debugf("Listing %d notes from profile %q", len(result.Entries), result.Profile)
	spinner.FinalMSG = ui.FormatEntries(result.Entries, emptyMsg)
	return nil
}
