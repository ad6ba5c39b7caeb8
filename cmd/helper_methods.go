package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	logger "github.com/PolarWolf314/zlang/internal/logging"
	"github.com/PolarWolf314/zlang/internal/store"
	"github.com/PolarWolf314/zlang/internal/ui"
	"github.com/PolarWolf314/zlang/internal/workflows"
	"github.com/briandowns/spinner"
	"github.com/decred/slog"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// applyDataDir moves ZlangSettings to the data_dir configured in
// config.toml before any workflow derives paths from it.
func applyDataDir() {
	if err := configs.ApplyDataDirOverride(); err != nil {
		Logger.WarnfAlways("Ignoring store.data_dir from config: %v", err)
	}
}

// logBackend is the subsystem log backend installed by setupLogging.
var logBackend *logger.Backend

// setupLogging wires the STOR and FLOW subsystem loggers. --debug sends them
// to stderr at debug level; --log-file also writes them to a rotated file at
// info level or lower. Without either they stay disabled.
func setupLogging() {
	closeLogging()

	var out io.Writer
	level := ""
	if logFile != "" {
		level = "info"
	}
	if debug {
		out = os.Stderr
		level = "debug"
	}

	bknd, err := logger.NewBackend(out, logFile, level)
	if err != nil {
		Logger.WarnfAlways("Failed to set up subsystem logging: %v", err)
		store.UseLogger(slog.Disabled)
		workflows.UseLogger(slog.Disabled)
		return
	}
	logBackend = bknd
	store.UseLogger(bknd.Logger(logger.SubsysStore))
	workflows.UseLogger(bknd.Logger(logger.SubsysWorkflows))
}

// closeLogging flushes the log file opened by setupLogging, if any.
func closeLogging() {
	if logBackend == nil {
		return
	}
	if err := logBackend.Close(); err != nil {
		Logger.Warnf("Failed to close log file: %v", err)
	}
	logBackend = nil
	store.UseLogger(slog.Disabled)
	workflows.UseLogger(slog.Disabled)
}

// formatError turns a workflow error into a user-facing message. unexpected
// is true for errors that should make the command exit non-zero without a
// more specific explanation.
func formatError(err error) (msg string, unexpected bool) {
	fail := ui.Error.Sprint("✗") + " "
	hint := "\n" + ui.Info.Sprint("→") + " "

	switch {
	case errors.Is(err, kerrors.ErrNotOnboarded):
		return fail + "zlang has not been set up yet" +
			hint + "Run " + ui.Code.Sprint("zlang vault onboard") + " first", false

	case errors.Is(err, kerrors.ErrAlreadyOnboarded):
		return fail + "zlang has already been set up" +
			hint + "Use " + ui.Code.Sprint("--force") + " to replace the master key (existing notes become unreadable)", false

	case errors.Is(err, kerrors.ErrAuthenticationFailed):
		return fail + "Could not decrypt notes: wrong master key or the file was tampered with" +
			hint + "Run " + ui.Code.Sprint("zlang vault recover") + " if the master key was lost", false

	case errors.Is(err, kerrors.ErrEnvelopeTooShort), errors.Is(err, kerrors.ErrMalformedPayload):
		return fail + "The encrypted notes file is damaged: " + err.Error(), false

	case errors.Is(err, kerrors.ErrInvalidKeyLength):
		return fail + "The master key file is damaged: " + err.Error() +
			hint + "Run " + ui.Code.Sprint("zlang vault recover") + " to create a new one", false

	case errors.Is(err, kerrors.ErrRecoveryTokenNotFound):
		return fail + "No recovery token found" +
			hint + "Recovery is only possible after " + ui.Code.Sprint("zlang vault onboard"), false

	case errors.Is(err, kerrors.ErrInvalidRecoveryToken):
		return fail + "The recovery token is invalid: " + err.Error(), false

	case errors.Is(err, kerrors.ErrBackupUnrecoverable):
		return fail + "The backup cannot be restored without the master key it was exported under" +
			hint + "Pass a copy of that key with " + ui.Code.Sprint("--old-key"), false

	case errors.Is(err, kerrors.ErrInvalidProfile):
		return fail + err.Error() +
			hint + "Profile names may only contain letters, digits, '.', '_' and '-'", false

	case errors.Is(err, kerrors.ErrInvalidLanguage):
		return fail + err.Error(), false

	case errors.Is(err, kerrors.ErrNetworkDisabled):
		return fail + "Network access is disabled" +
			hint + "Set " + ui.Code.Sprint("allow = true") + " under " + ui.Code.Sprint("[network]") + " in the config, or re-run onboarding", false

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return fail + err.Error(), false

	case errors.Is(err, kerrors.ErrIO):
		return fail + "File access failed: " + err.Error(), true

	default:
		return fail + err.Error(), true
	}
}

// reportError sets the spinner's final message for err and returns err when
// it should fail the command.
func reportError(s *spinner.Spinner, err error) error {
	msg, unexpected := formatError(err)
	s.FinalMSG = msg
	Logger.Errorf("%v", err)
	if unexpected {
		return err
	}
	return nil
}
