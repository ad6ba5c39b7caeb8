package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var networkURL string

func init() {
	syncCmd.Flags().StringVar(&networkURL, "url", "", "probe this URL instead of the configured sync_url")
	networkTestCmd.Flags().StringVar(&networkURL, "url", "", "probe this URL instead of the configured probe_url")
}

// resetNetworkCommandState resets the network commands' global state for testing.
func resetNetworkCommandState() {
	networkURL = ""
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Check that the sync endpoint is reachable",
	Long: `Probes the configured sync endpoint. Notes are never uploaded.

Requires network access to have been allowed at onboarding.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNetwork("Contacting sync endpoint...", "Sync", workflows.Sync)
	},
}

var networkTestCmd = &cobra.Command{
	Use:   "network-test",
	Short: "Check internet connectivity",
	Long:  `Fetches the configured probe URL once and reports the result.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNetwork("Testing network...", "Network test", workflows.NetworkTest)
	},
}

type networkWorkflow func(ctx context.Context, opts workflows.NetworkOptions) (*workflows.NetworkResult, error)

func runNetwork(message, label string, wf networkWorkflow) error {
	Logger.Infof("Starting %s", strings.ToLower(label))
	spinner, cleanup := startSpinner(message, verbose)
	defer cleanup()

	result, err := wf(context.Background(), workflows.NetworkOptions{URL: networkURL})
	if err != nil {
		msg, unexpected := formatError(err)
		spinner.FinalMSG = msg
		// Network failures are reported, not fatal.
		if unexpected {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + label + " failed: " + err.Error()
		}
		return nil
	}

	elapsed := result.Elapsed.Round(time.Millisecond)
	if !result.OK() {
		spinner.FinalMSG = ui.Warning.Sprint("⚠") + fmt.Sprintf(" %s: %s answered %d in %v", label, result.URL, result.Status, elapsed)
		return nil
	}

	msg := ui.Success.Sprint("✓") + fmt.Sprintf(" %s succeeded: %s answered %d in %v", label, result.URL, result.Status, elapsed)
	if body := strings.TrimSpace(result.Body); body != "" && verbose {
		msg += "\n\n" + ui.Muted.Sprint(body)
	}
	spinner.FinalMSG = msg
	return nil
}
