package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "blob.bin")

	if err := WriteFileAtomic(path, []byte("hello"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected %q, got %q", "hello", string(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}
}

func TestWriteFileAtomic_ReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")

	if err := WriteFileAtomic(path, []byte("first"), 0600); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0600); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("Expected %q, got %q", "second", string(data))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".new") {
			t.Errorf("Temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileAtomic_FailureKeepsOldContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob.bin")
	if err := WriteFileAtomic(path, []byte("committed"), 0600); err != nil {
		t.Fatalf("initial write failed: %v", err)
	}

	// A directory squatting on the temp name makes the temp file unopenable.
	if err := os.Mkdir(filepath.Join(dir, ".blob.bin.new"), 0700); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	if err := WriteFileAtomic(path, []byte("lost"), 0600); err == nil {
		t.Fatal("Expected error when temp file cannot be created")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "committed" {
		t.Errorf("Expected committed contents to survive, got %q", string(data))
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	if !FileExists(dir) {
		t.Error("Expected temp dir to exist")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("Expected missing file to not exist")
	}
}
