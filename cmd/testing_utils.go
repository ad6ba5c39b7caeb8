// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments and
// capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/zlang/internal/configs"
	logger "github.com/PolarWolf314/zlang/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points zlang at temporary directories and disables
// prompts and color for the duration of the test.
func setupTestEnvironment(t *testing.T) *configs.Settings {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.ZlangSettings
	originalInteractive := isInteractive
	originalInput := promptInput

	configs.ZlangSettings = &configs.Settings{
		DataDir:   filepath.Join(tempDir, "data"),
		ConfigDir: filepath.Join(tempDir, "config"),
	}
	isInteractive = func() bool { return false }
	t.Setenv("NO_COLOR", "1")
	ResetGlobalState()

	t.Cleanup(func() {
		configs.ZlangSettings = originalSettings
		isInteractive = originalInteractive
		promptInput = originalInput
		ResetGlobalState()
	})

	return configs.ZlangSettings
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI creates a complete CLI instance for testing with the given arguments,
// e.g. createTestCLI("notes", "save", "k", "v").
func createTestCLI(args ...string) *cobra.Command {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	rootCmd := &cobra.Command{
		Use:   "zlang",
		Short: "zlang - A local, encrypted note store for the command line.",
	}
	rootCmd.AddCommand(GetNotesCmd())
	rootCmd.AddCommand(GetVaultCmd())
	rootCmd.SetArgs(args)

	return rootCmd
}

// runCLI executes the CLI with args and returns its combined output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	output, err := captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
	if err != nil {
		t.Fatalf("zlang %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	ResetGlobalState()
	return output
}

// onboardForTest runs a non-interactive onboarding.
func onboardForTest(t *testing.T, extraArgs ...string) string {
	t.Helper()
	args := append([]string{"vault", "onboard", "--name", "Ada", "--yes"}, extraArgs...)
	return runCLI(t, args...)
}
