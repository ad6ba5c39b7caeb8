package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestNotesCommands contains integration tests for the `zlang notes` commands.
func TestNotesCommands(t *testing.T) {
	t.Run("SaveAndGet", testSaveAndGet)
	t.Run("SaveWithoutOnboarding", testSaveWithoutOnboarding)
	t.Run("ShowSearchAndTag", testShowSearchAndTag)
	t.Run("Undo", testUndo)
	t.Run("ExportImport", testExportImport)
	t.Run("ProfileFlag", testProfileFlag)
}

func testSaveAndGet(t *testing.T) {
	setupTestEnvironment(t)
	onboardForTest(t)

	output := runCLI(t, "notes", "save", "k1", "v1", "--tags", "tag1, tag2")
	if !strings.Contains(output, `Saved "k1" in profile 'default'`) {
		t.Errorf("Expected save confirmation, got: %s", output)
	}

	output = runCLI(t, "notes", "save", "k1", "v2")
	if !strings.Contains(output, `Replaced "k1"`) {
		t.Errorf("Expected replace confirmation, got: %s", output)
	}

	output = runCLI(t, "notes", "get", "k1")
	if !strings.Contains(output, `"k1": v2`) {
		t.Errorf("Expected note in output, got: %s", output)
	}

	output = runCLI(t, "notes", "get", "missing")
	if !strings.Contains(output, `No note found for "missing"`) {
		t.Errorf("Expected not-found warning, got: %s", output)
	}
}

func testSaveWithoutOnboarding(t *testing.T) {
	setupTestEnvironment(t)

	output := runCLI(t, "notes", "save", "k", "v")
	if !strings.Contains(output, "zlang has not been set up yet") {
		t.Errorf("Expected onboarding hint, got: %s", output)
	}
	if !strings.Contains(output, "`zlang vault onboard`") {
		t.Errorf("Expected onboarding command, got: %s", output)
	}
}

func testShowSearchAndTag(t *testing.T) {
	setupTestEnvironment(t)
	onboardForTest(t)

	output := runCLI(t, "notes", "show")
	if !strings.Contains(output, "No notes saved yet") {
		t.Errorf("Expected empty message, got: %s", output)
	}

	runCLI(t, "notes", "save", "groceries", "milk and eggs", "--tags", "home")
	runCLI(t, "notes", "save", "report", "quarterly numbers", "--tags", "work")

	output = runCLI(t, "notes", "show")
	groceries := strings.Index(output, `"groceries"`)
	report := strings.Index(output, `"report"`)
	if groceries < 0 || report < 0 || groceries > report {
		t.Errorf("Expected both notes sorted by key, got: %s", output)
	}

	output = runCLI(t, "notes", "search", "eggs")
	if !strings.Contains(output, `"groceries"`) || strings.Contains(output, `"report"`) {
		t.Errorf("Expected only groceries, got: %s", output)
	}

	output = runCLI(t, "notes", "search", "EGGS")
	if !strings.Contains(output, "No notes match EGGS") {
		t.Errorf("Expected case-sensitive miss, got: %s", output)
	}

	output = runCLI(t, "notes", "tag", "work")
	if !strings.Contains(output, `"report"`) || strings.Contains(output, `"groceries"`) {
		t.Errorf("Expected only report, got: %s", output)
	}
}

func testUndo(t *testing.T) {
	setupTestEnvironment(t)
	onboardForTest(t)

	output := runCLI(t, "notes", "undo")
	if !strings.Contains(output, "Nothing to undo") {
		t.Errorf("Expected nothing to undo, got: %s", output)
	}

	runCLI(t, "notes", "save", "k", "v")
	output = runCLI(t, "notes", "undo")
	if !strings.Contains(output, `Removed "k"`) {
		t.Errorf("Expected removal, got: %s", output)
	}

	output = runCLI(t, "notes", "get", "k")
	if !strings.Contains(output, "No note found") {
		t.Errorf("Expected note to be gone, got: %s", output)
	}
}

func testExportImport(t *testing.T) {
	setupTestEnvironment(t)
	onboardForTest(t)
	backup := filepath.Join(t.TempDir(), "backup.bin")

	runCLI(t, "notes", "save", "a", "1")
	output := runCLI(t, "notes", "export", backup)
	if !strings.Contains(output, "Exported 1 note(s) to "+backup) {
		t.Errorf("Expected export confirmation, got: %s", output)
	}

	output = runCLI(t, "notes", "import", backup, "--dry-run")
	if !strings.Contains(output, "nothing would change") {
		t.Errorf("Expected unchanged dry run, got: %s", output)
	}

	runCLI(t, "notes", "save", "b", "2")
	output = runCLI(t, "notes", "import", backup, "--dry-run")
	if !strings.Contains(output, "Would import 1 note(s) into 'default' (replacing 2)") {
		t.Errorf("Expected dry run summary, got: %s", output)
	}

	output = runCLI(t, "notes", "import", backup)
	if !strings.Contains(output, "Imported 1 note(s) into 'default' (replaced 2)") {
		t.Errorf("Expected import confirmation, got: %s", output)
	}

	output = runCLI(t, "notes", "get", "b")
	if !strings.Contains(output, "No note found") {
		t.Errorf("Expected import to replace notes, got: %s", output)
	}
}

func testProfileFlag(t *testing.T) {
	setupTestEnvironment(t)
	onboardForTest(t)

	runCLI(t, "notes", "save", "k", "work-value", "--profile", "work")

	output := runCLI(t, "notes", "get", "k")
	if !strings.Contains(output, "No note found") {
		t.Errorf("Expected active profile to be untouched, got: %s", output)
	}

	output = runCLI(t, "notes", "get", "k", "-p", "work")
	if !strings.Contains(output, "work-value") {
		t.Errorf("Expected note from work profile, got: %s", output)
	}

	output = runCLI(t, "notes", "show", "--profile", "../escape")
	if !strings.Contains(output, "invalid profile name") {
		t.Errorf("Expected invalid profile error, got: %s", output)
	}
}
