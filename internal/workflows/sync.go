package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/configs"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/PolarWolf314/zlang/internal/probe"
)

// syncRetries is how many times a failed sync probe is retried.
const syncRetries = 2

// NetworkOptions configures the sync and network-test workflows.
type NetworkOptions struct {
	// URL overrides the configured endpoint when set.
	URL string
}

// NetworkResult contains the outcome of a probe.
type NetworkResult struct {
	*probe.Result
}

func runProbe(ctx context.Context, url func(n configs.Network) string, opts NetworkOptions, retries int) (*NetworkResult, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	if !config.Network.Allow {
		return nil, fmt.Errorf("%w: re-run onboarding to allow network access", kerrors.ErrNetworkDisabled)
	}

	timeout, err := config.Network.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	target := opts.URL
	if target == "" {
		target = url(config.Network)
	}

	log.Debugf("Probing %s (timeout %v, retries %d)", target, timeout, retries)
	result, err := probe.Check(ctx, target, probe.Options{Timeout: timeout, Retries: retries})
	if err != nil {
		return nil, err
	}
	return &NetworkResult{Result: result}, nil
}

// Sync probes the configured sync endpoint. Notes are never uploaded.
//
// Returns ErrNetworkDisabled if network access was not allowed.
func Sync(ctx context.Context, opts NetworkOptions) (*NetworkResult, error) {
	result, err := runProbe(ctx, func(n configs.Network) string { return n.SyncURL }, opts, syncRetries)
	if err != nil {
		return nil, err
	}
	audit.Log(audit.EventSync)
	return result, nil
}

// NetworkTest probes the configured connectivity endpoint once.
//
// Returns ErrNetworkDisabled if network access was not allowed.
func NetworkTest(ctx context.Context, opts NetworkOptions) (*NetworkResult, error) {
	return runProbe(ctx, func(n configs.Network) string { return n.ProbeURL }, opts, 0)
}
