package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/zlang/internal/configs"
	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	onboardName         string
	onboardLanguage     string
	onboardAllowNetwork bool
	onboardProfile      string
	onboardForce        bool
	onboardYes          bool
)

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "your name (default: OS username)")
	onboardCmd.Flags().StringVar(&onboardLanguage, "language", "", "preferred language: en, hi or es")
	onboardCmd.Flags().BoolVar(&onboardAllowNetwork, "allow-network", false, "allow sync and network-test")
	onboardCmd.Flags().StringVar(&onboardProfile, "profile", "", "first profile to create (default: default)")
	onboardCmd.Flags().BoolVar(&onboardForce, "force", false, "replace an existing master key")
	onboardCmd.Flags().BoolVarP(&onboardYes, "yes", "y", false, "skip prompts and use flags and defaults")
}

// resetOnboardCommandState resets the onboard command's global state for testing.
func resetOnboardCommandState() {
	onboardName = ""
	onboardLanguage = ""
	onboardAllowNetwork = false
	onboardProfile = ""
	onboardForce = false
	onboardYes = false
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up zlang for first use",
	Long: `Creates the master key, an empty encrypted note store, a recovery token and
your user configuration.

When run in a terminal you are asked for anything not given as a flag.

Examples:
  zlang vault onboard
  zlang vault onboard --name Ada --language en --allow-network --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting onboard command")

		opts := workflows.OnboardOptions{
			Name:         onboardName,
			Language:     onboardLanguage,
			AllowNetwork: onboardAllowNetwork,
			Profile:      onboardProfile,
			Force:        onboardForce,
		}

		if !onboardYes && isInteractive() {
			fmt.Println(ui.Highlight.Sprint(figure.NewFigure("zlang", "", true).String()))
			if err := promptOnboarding(cmd, &opts); err != nil {
				return Logger.ErrorfAndReturn("failed to read onboarding answers: %w", err)
			}
		}

		spinner, cleanup := startSpinner("Setting up zlang...", verbose)
		defer cleanup()

		result, err := workflows.Onboard(context.Background(), opts)
		if err != nil {
			return reportError(spinner, err)
		}

		greeting := "Welcome"
		if result.Name != "" {
			greeting += ", " + result.Name
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + greeting + "! zlang is ready\n\n" +
			"  Master key:     " + ui.Path.Sprint(result.KeyPath) + "\n" +
			"  Recovery token: " + ui.Path.Sprint(result.RecoveryPath) + " (" + ui.Muted.Sprint(result.Token.ID) + ")\n" +
			"  Config:         " + ui.Path.Sprint(result.ConfigPath) + "\n" +
			"  Profile:        " + ui.Highlight.Sprint(result.Profile) + "\n\n" +
			ui.Warning.Sprint("Warning:") + " Back up the master key. Notes cannot be decrypted without it."
		return nil
	},
}

// promptOnboarding asks for every option that was not set by a flag.
func promptOnboarding(cmd *cobra.Command, opts *workflows.OnboardOptions) error {
	p := newPrompter()

	if !cmd.Flags().Changed("name") {
		name, err := p.Ask("What is your name? ")
		if err != nil {
			return err
		}
		opts.Name = name
	}

	if !cmd.Flags().Changed("language") {
		lang, err := p.Ask("Preferred language (" + strings.Join(configs.SupportedLanguages, "/") + ") [en]: ")
		if err != nil {
			return err
		}
		opts.Language = strings.ToLower(lang)
	}

	if !cmd.Flags().Changed("allow-network") {
		allow, err := p.Confirm("Allow network operations (sync, network-test)? [y/N]: ")
		if err != nil {
			return err
		}
		opts.AllowNetwork = allow
	}

	return nil
}
