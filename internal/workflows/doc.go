// Package workflows provides high-level orchestration for zlang commands.
//
// Workflows coordinate the configs, secrets, store, probe and audit packages
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else: loading the user config and master key,
// opening and closing the profile store, and recording audit entries.
//
// # Available Workflows
//
//   - Onboard, Recover: key lifecycle
//   - Save, Get, Show, Search, FilterByTag, Undo: notes in a profile
//   - Export, Import: standalone encrypted backups
//   - SwitchProfile, ListProfiles: per-profile stores
//   - Sync, NetworkTest: connectivity probes
//   - Log: audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.Save(ctx, opts)
//	if errors.Is(err, kerrors.ErrNotOnboarded) {
//	    // suggest running onboarding
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It bounds the wait for another process holding the profile lock and the
// network probes.
package workflows
