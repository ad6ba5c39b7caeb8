package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit   int
	logReverse bool
	logEvent   string
	logSince   string
	logUntil   string
	logJSON    bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logEvent, "event", "", "filter by event prefix (comma-separated), e.g. saved,undid")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after a date (YYYY-MM-DD) or duration ago (7d)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before a date (YYYY-MM-DD) or duration ago (7d)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logEvent = ""
	logSince = ""
	logUntil = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log: when zlang was onboarded or recovered, and when
notes were saved, undone, exported or imported.

Examples:
  zlang vault log                  # View full log
  zlang vault log -n 10            # Last 10 entries
  zlang vault log --reverse        # Most recent first
  zlang vault log --event saved    # Only saves
  zlang vault log --since 7d       # The last week
  zlang vault log --json           # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	result, err := workflows.Log(context.Background(), workflows.LogOptions{
		Limit:   logLimit,
		Reverse: logReverse,
		Events:  logEvent,
		Since:   logSince,
		Until:   logUntil,
	})
	if err != nil {
		return reportError(spinner, err)
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			spinner.FinalMSG = "No audit log entries found."
		} else {
			spinner.FinalMSG = "No audit log entries found matching the filters."
		}
		return nil
	}

	if logJSON {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		spinner.FinalMSG = string(data)
		return nil
	}

	spinner.FinalMSG = formatLogEntries(result.Entries)
	return nil
}

func formatLogEntries(entries []audit.Entry) string {
	var out string
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%s  %s", ui.Muted.Sprint(ui.FormatTime(e.Timestamp)), e.Event)
	}
	return out
}
