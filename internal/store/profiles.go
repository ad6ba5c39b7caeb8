package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/utils"
)

const (
	profilesDirName = "profiles"
	envelopeName    = "memory.bin"
	lockName        = "memory.lock"
)

// ValidateProfile reports whether name can identify a profile store.
func ValidateProfile(name string) error {
	if name == "" || name == "." || name == ".." || len(name) > utils.MaxProfileNameLen {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidProfile, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q contains %q", kerrors.ErrInvalidProfile, name, r)
		}
	}
	return nil
}

// ProfilesDir returns the directory holding every profile under dir.
func ProfilesDir(dir string) string {
	return filepath.Join(dir, profilesDirName)
}

// EnvelopePath returns the encrypted memory file of a profile.
func EnvelopePath(dir, profile string) string {
	return filepath.Join(ProfilesDir(dir), profile, envelopeName)
}

func lockPath(dir, profile string) string {
	return filepath.Join(ProfilesDir(dir), profile, lockName)
}

// Exists reports whether profile has a persisted envelope under dir.
func Exists(dir, profile string) (bool, error) {
	if err := ValidateProfile(profile); err != nil {
		return false, err
	}
	return utils.FileExists(EnvelopePath(dir, profile)), nil
}

// ListProfiles returns the profiles under dir that have a persisted
// envelope, sorted by name. A missing profiles directory yields none.
func ListProfiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(ProfilesDir(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: listing profiles: %v", kerrors.ErrIO, err)
	}

	var profiles []string
	for _, entry := range entries {
		if !entry.IsDir() || ValidateProfile(entry.Name()) != nil {
			continue
		}
		if utils.FileExists(EnvelopePath(dir, entry.Name())) {
			profiles = append(profiles, entry.Name())
		}
	}
	sort.Strings(profiles)
	return profiles, nil
}
