package cmd

import (
	"context"
	"errors"
	"strings"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/utils"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile [name]",
	Short: "List profiles or switch the active one",
	Long: `Without arguments, lists the profiles and marks the active one.

With a name, makes that profile active, creating an empty store for it if
needed. Notes are never copied between profiles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runListProfiles()
		}

		Logger.Infof("Switching to profile %q", args[0])
		spinner, cleanup := startSpinner("Switching profile...", verbose)
		defer cleanup()

		result, err := workflows.SwitchProfile(context.Background(), workflows.SwitchProfileOptions{Name: args[0]})
		if err != nil {
			rerr := reportError(spinner, err)
			if errors.Is(err, kerrors.ErrInvalidProfile) {
				spinner.FinalMSG += "\n" + ui.Info.Sprint("→") + " Try " +
					ui.Code.Sprint("zlang vault profile "+utils.SanitizeProfileName(args[0]))
			}
			return rerr
		}

		msg := ui.Success.Sprint("✓") + " Switched to profile " + ui.Highlight.Sprint(result.Profile)
		if result.Created {
			msg += " " + ui.Muted.Sprint("(new)")
		}
		spinner.FinalMSG = msg
		return nil
	},
}

func runListProfiles() error {
	spinner, cleanup := startSpinner("Loading profiles...", verbose)
	defer cleanup()

	result, err := workflows.ListProfiles(context.Background())
	if err != nil {
		return reportError(spinner, err)
	}

	if len(result.Profiles) == 0 {
		spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No profiles yet. Run " + ui.Code.Sprint("zlang vault onboard") + " first"
		return nil
	}

	lines := make([]string, len(result.Profiles))
	for i, name := range result.Profiles {
		if name == result.Active {
			lines[i] = ui.Success.Sprint("*") + " " + ui.Highlight.Sprint(name)
		} else {
			lines[i] = "  " + name
		}
	}
	spinner.FinalMSG = strings.Join(lines, "\n")
	return nil
}
