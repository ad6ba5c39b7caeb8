package configs

import (
	"fmt"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/xhit/go-str2duration/v2"
)

const (
	// DefaultProfile is the profile used until another one is selected.
	DefaultProfile = "default"

	// DefaultProbeURL is fetched by the network test.
	DefaultProbeURL = "https://api.github.com/zen"

	// DefaultSyncURL is fetched by the sync probe.
	DefaultSyncURL = "https://httpbin.org/get"

	// DefaultTimeout bounds every network probe.
	DefaultTimeout = "5s"
)

// SupportedLanguages lists the accepted language preferences.
var SupportedLanguages = []string{"en", "hi", "es"}

// UserConfig is the user's config.toml.
type UserConfig struct {
	User    User    `toml:"user"`
	Network Network `toml:"network"`
	Store   Store   `toml:"store"`
}

// User is the profile captured at onboarding.
type User struct {
	Name     string `toml:"name"`
	Language string `toml:"language"`
}

// Network controls the connectivity probes.
type Network struct {
	Allow    bool   `toml:"allow"`
	ProbeURL string `toml:"probe_url"`
	SyncURL  string `toml:"sync_url"`
	Timeout  string `toml:"timeout"`
}

// Store selects where and which notes are used.
type Store struct {
	ActiveProfile string `toml:"active_profile"`
	DataDir       string `toml:"data_dir,omitempty"`
}

// DefaultUserConfig returns the configuration used before onboarding.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		User: User{Language: "en"},
		Network: Network{
			ProbeURL: DefaultProbeURL,
			SyncURL:  DefaultSyncURL,
			Timeout:  DefaultTimeout,
		},
		Store: Store{ActiveProfile: DefaultProfile},
	}
}

// LoadUserConfig loads config.toml over the defaults. A missing file yields
// the defaults. It never changes ZlangSettings; see ApplyDataDirOverride.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ZlangSettings.ConfigPath()
	config := DefaultUserConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Store.ActiveProfile == "" {
		config.Store.ActiveProfile = DefaultProfile
	}

	return config, nil
}

// ApplyDataDirOverride points ZlangSettings.DataDir at store.data_dir from
// config.toml. It is called once at startup so every path derived from the
// settings during a command agrees. ZLANG_DATA_DIR takes precedence.
func ApplyDataDirOverride() error {
	if os.Getenv(DataDirEnv) != "" {
		return nil
	}

	config, err := LoadUserConfig()
	if err != nil {
		return err
	}
	if config.Store.DataDir == "" {
		return nil
	}

	dataDir, err := ExpandPath(config.Store.DataDir)
	if err != nil {
		return err
	}
	ZlangSettings.DataDir = dataDir
	return nil
}

// SaveUserConfig saves the user configuration to config.toml.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ZlangSettings.ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// ValidateLanguage returns ErrInvalidLanguage for unsupported preferences.
func ValidateLanguage(lang string) error {
	for _, l := range SupportedLanguages {
		if lang == l {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (supported: en, hi, es)", kerrors.ErrInvalidLanguage, lang)
}

// TimeoutDuration parses the probe timeout, falling back to DefaultTimeout
// when the value is empty. Day and week units ("1d") are accepted.
func (n Network) TimeoutDuration() (time.Duration, error) {
	raw := n.Timeout
	if raw == "" {
		raw = DefaultTimeout
	}
	d, err := str2duration.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid network timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid network timeout %q: must be positive", raw)
	}
	return d, nil
}
