package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "ZLANG_DATA_DIR"

// Settings holds the filesystem locations zlang works with.
type Settings struct {
	// DataDir holds the master key, recovery token, audit log and profile stores.
	DataDir string

	// ConfigDir holds config.toml.
	ConfigDir string
}

// ZlangSettings is initialised from the environment at startup. Tests
// replace it to point at temporary directories.
var ZlangSettings *Settings

func init() {
	settings, err := DefaultSettings()
	if err != nil {
		log.Fatalf("error resolving zlang directories: %s", err)
	}
	ZlangSettings = settings
}

// DefaultSettings resolves the XDG locations, honouring ZLANG_DATA_DIR.
func DefaultSettings() (*Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("getting config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	dataDir = filepath.Join(dataDir, "zlang")

	if override := os.Getenv(DataDirEnv); override != "" {
		if dataDir, err = ExpandPath(override); err != nil {
			return nil, err
		}
	}

	return &Settings{
		DataDir:   dataDir,
		ConfigDir: filepath.Join(configDir, "zlang"),
	}, nil
}

// ExpandPath expands a leading ~ and cleans the result.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding path %q: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}

// MasterKeyPath is the raw 32-byte master key store.
func (s *Settings) MasterKeyPath() string {
	return filepath.Join(s.DataDir, "master.key")
}

// RecoveryPath is the recovery token store.
func (s *Settings) RecoveryPath() string {
	return filepath.Join(s.DataDir, "recovery.json")
}

// AuditLogPath is the line-oriented audit log.
func (s *Settings) AuditLogPath() string {
	return filepath.Join(s.DataDir, "audit.log")
}

// ConfigPath is the user configuration file.
func (s *Settings) ConfigPath() string {
	return filepath.Join(s.ConfigDir, "config.toml")
}
