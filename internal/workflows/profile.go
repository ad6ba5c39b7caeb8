package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/configs"
	"github.com/PolarWolf314/zlang/internal/store"
)

// SwitchProfileOptions configures the profile switch workflow.
type SwitchProfileOptions struct {
	Name string
}

// SwitchProfileResult contains the outcome of a profile switch.
type SwitchProfileResult struct {
	Profile  string
	Previous string

	// Created indicates the profile had no store and an empty one was made.
	Created bool
}

// SwitchProfile makes Name the active profile, creating its empty store when
// it does not exist yet. Notes are never copied between profiles.
func SwitchProfile(ctx context.Context, opts SwitchProfileOptions) (*SwitchProfileResult, error) {
	if err := store.ValidateProfile(opts.Name); err != nil {
		return nil, err
	}

	existed, err := store.Exists(configs.ZlangSettings.DataDir, opts.Name)
	if err != nil {
		return nil, err
	}

	s, config, err := openStore(ctx, opts.Name)
	if err != nil {
		return nil, err
	}
	err = s.Init()
	s.Close()
	if err != nil {
		return nil, fmt.Errorf("initializing profile %q: %w", opts.Name, err)
	}

	previous := config.Store.ActiveProfile
	config.Store.ActiveProfile = opts.Name
	if err := configs.SaveUserConfig(config); err != nil {
		return nil, err
	}

	audit.Logf("switched profile %s", opts.Name)

	return &SwitchProfileResult{
		Profile:  opts.Name,
		Previous: previous,
		Created:  !existed,
	}, nil
}

// ListProfilesResult lists the profiles with a store.
type ListProfilesResult struct {
	Active   string
	Profiles []string
}

// ListProfiles returns every profile under the data directory and the active
// one.
func ListProfiles(ctx context.Context) (*ListProfilesResult, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	profiles, err := store.ListProfiles(configs.ZlangSettings.DataDir)
	if err != nil {
		return nil, err
	}

	return &ListProfilesResult{
		Active:   config.Store.ActiveProfile,
		Profiles: profiles,
	}, nil
}
