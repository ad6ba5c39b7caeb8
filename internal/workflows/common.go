package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/secrets"
	"github.com/PolarWolf314/zlang/internal/store"
	"github.com/PolarWolf314/zlang/internal/utils"
	"github.com/decred/slog"
)

var log slog.Logger = slog.Disabled

// UseLogger sets the package-level logger.
func UseLogger(v slog.Logger) {
	log = v
}

// loadMasterKey reads the master key, reporting a missing key as
// ErrNotOnboarded.
func loadMasterKey() (secrets.Key, error) {
	key, err := secrets.ReadKeyFile(configs.ZlangSettings.MasterKeyPath())
	if errors.Is(err, kerrors.ErrKeyNotFound) {
		return secrets.Key{}, fmt.Errorf("%w: run 'zlang vault onboard' first", kerrors.ErrNotOnboarded)
	}
	return key, err
}

// resolveProfile returns profile, or the configured active profile when
// profile is empty.
func resolveProfile(config *configs.UserConfig, profile string) string {
	if profile != "" {
		return profile
	}
	return config.Store.ActiveProfile
}

// openStore loads the config and master key and opens the selected profile.
// The caller must close the returned store.
func openStore(ctx context.Context, profile string) (*store.Store, *configs.UserConfig, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, nil, err
	}

	key, err := loadMasterKey()
	if err != nil {
		return nil, nil, err
	}
	defer key.Wipe()

	profile = resolveProfile(config, profile)
	log.Debugf("Opening profile %q in %s", profile, configs.ZlangSettings.DataDir)

	s, err := store.Open(ctx, store.Options{
		Dir:     configs.ZlangSettings.DataDir,
		Profile: profile,
		Key:     key,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("opening profile %q: %w", profile, err)
	}
	return s, config, nil
}

// keySwap records what the master key file held before a new key was
// installed, so a failed onboarding or recovery can put it back.
type keySwap struct {
	path     string
	previous []byte
	existed  bool
}

// installKey writes key to path after saving the file's current contents.
// The caller must call either rollback or commit.
func installKey(path string, key secrets.Key) (*keySwap, error) {
	previous, err := os.ReadFile(path)
	existed := err == nil
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, path, err)
	}

	if err := secrets.WriteKeyFile(path, key); err != nil {
		wipe(previous)
		return nil, err
	}
	return &keySwap{path: path, previous: previous, existed: existed}, nil
}

// rollback restores the previous key file, or removes the new one when
// there was none.
func (k *keySwap) rollback() {
	defer wipe(k.previous)
	if !k.existed {
		if err := os.Remove(k.path); err != nil && !os.IsNotExist(err) {
			log.Errorf("Failed to remove master key at %s: %v", k.path, err)
		}
		return
	}
	if err := utils.WriteFileAtomic(k.path, k.previous, 0600); err != nil {
		log.Errorf("Failed to restore master key at %s: %v", k.path, err)
		return
	}
	log.Warnf("Restored previous master key at %s", k.path)
}

// commit forgets the previous key.
func (k *keySwap) commit() {
	wipe(k.previous)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
