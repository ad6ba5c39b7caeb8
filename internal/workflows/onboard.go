package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/memory"
	"github.com/PolarWolf314/zlang/internal/secrets"
	"github.com/PolarWolf314/zlang/internal/store"
	"github.com/PolarWolf314/zlang/internal/utils"
)

// OnboardOptions configures the onboard workflow.
type OnboardOptions struct {
	// Name is the user's display name. If empty, the OS username is used.
	Name string

	// Language is the preferred language: en, hi or es. Empty means en.
	Language string

	// AllowNetwork enables the sync and network-test commands.
	AllowNetwork bool

	// Profile is the first profile to create. Empty means "default".
	Profile string

	// Force overwrites an existing master key. Notes encrypted under the old
	// key become unreadable.
	Force bool
}

// OnboardResult contains the outcome of an onboard operation.
type OnboardResult struct {
	Name     string
	Language string
	Profile  string

	// KeyPath is where the new master key was written.
	KeyPath string

	// Token is the recovery token created for this installation.
	Token secrets.RecoveryToken

	// RecoveryPath is where the recovery token was written.
	RecoveryPath string

	// ConfigPath is where the user configuration was written.
	ConfigPath string
}

// Onboard performs first-run setup: it creates the master key, an empty
// encrypted store for the first profile, the recovery token and the user
// configuration.
//
// Returns ErrAlreadyOnboarded if a master key exists and Force is not set.
// Returns ErrInvalidLanguage or ErrInvalidProfile for unusable options.
func Onboard(ctx context.Context, opts OnboardOptions) (*OnboardResult, error) {
	settings := configs.ZlangSettings

	language := opts.Language
	if language == "" {
		language = "en"
	}
	if err := configs.ValidateLanguage(language); err != nil {
		return nil, err
	}

	profile := opts.Profile
	if profile == "" {
		profile = configs.DefaultProfile
	}
	if err := store.ValidateProfile(profile); err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = utils.DefaultDisplayName()
	}

	keyPath := settings.MasterKeyPath()
	keyExisted := utils.FileExists(keyPath)
	if keyExisted && !opts.Force {
		return nil, kerrors.ErrAlreadyOnboarded
	}

	key, err := secrets.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating master key: %w", err)
	}
	defer key.Wipe()

	swap, err := installKey(keyPath, key)
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote master key to %s", keyPath)

	// An onboarding that fails part way puts back whatever key was there
	// before, or none, so it can simply be retried.
	committed := false
	defer func() {
		if !committed {
			swap.rollback()
		}
	}()

	s, err := store.Open(ctx, store.Options{
		Dir:     settings.DataDir,
		Profile: profile,
		Key:     key,
		Discard: opts.Force,
	})
	if err != nil {
		return nil, fmt.Errorf("opening profile %q: %w", profile, err)
	}
	if opts.Force {
		err = s.Replace(memory.New())
	} else {
		err = s.Init()
	}
	s.Close()
	if err != nil {
		return nil, fmt.Errorf("initializing profile %q: %w", profile, err)
	}

	token := secrets.NewRecoveryToken()
	if err := secrets.WriteRecoveryToken(settings.RecoveryPath(), token); err != nil {
		return nil, err
	}

	config, err := configs.LoadUserConfig()
	if err != nil {
		config = configs.DefaultUserConfig()
	}
	config.User.Name = name
	config.User.Language = language
	config.Network.Allow = opts.AllowNetwork
	config.Store.ActiveProfile = profile
	if err := configs.SaveUserConfig(config); err != nil {
		return nil, err
	}

	swap.commit()
	committed = true
	audit.Log(audit.EventOnboarded)

	return &OnboardResult{
		Name:         name,
		Language:     language,
		Profile:      profile,
		KeyPath:      keyPath,
		Token:        token,
		RecoveryPath: settings.RecoveryPath(),
		ConfigPath:   settings.ConfigPath(),
	}, nil
}
