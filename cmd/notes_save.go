package cmd

import (
	"context"
	"strings"

	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/utils"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	saveTags  string
	saveStdin bool
)

func init() {
	saveCmd.Flags().StringVarP(&saveTags, "tags", "t", "", "comma-separated tags, e.g. work,urgent")
	saveCmd.Flags().BoolVar(&saveStdin, "stdin", false, "read the note value from stdin")
}

// resetSaveCommandState resets the save command's global state for testing.
func resetSaveCommandState() {
	saveTags = ""
	saveStdin = false
}

var saveCmd = &cobra.Command{
	Use:   "save <key> [value]",
	Short: "Save a note",
	Long: `Saves a note under a key, replacing any note already stored there.

The value can be given as the second argument or piped in with --stdin.

Examples:
  zlang notes save groceries "milk and eggs" --tags home
  echo "quarterly numbers" | zlang notes save report --stdin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting save command")
		spinner, cleanup := startSpinner("Saving note...", verbose)
		defer cleanup()

		key := args[0]
		value := ""
		switch {
		case saveStdin:
			data, err := utils.ReadStdin()
			if err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
				return nil
			}
			value = strings.TrimRight(string(data), "\r\n")
		case len(args) == 2:
			value = args[1]
		}

		result, err := workflows.Save(context.Background(), workflows.SaveOptions{
			Key:     key,
			Value:   value,
			Tags:    utils.ParseTags(saveTags),
			Profile: profile,
		})
		if err != nil {
			return reportError(spinner, err)
		}

		verb := "Saved"
		if result.Replaced {
			verb = "Replaced"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " " + ui.Key.Sprint(result.Key) +
			" in profile " + ui.Highlight.Sprint(result.Profile)
		return nil
	},
}
