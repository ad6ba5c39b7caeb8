package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/PolarWolf314/zlang/internal/audit"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// InputPath is an envelope produced by export.
	InputPath string

	Profile string

	// DryRun decrypts the envelope and reports what would change without
	// writing anything.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Profile string

	// PreviousCount is the number of notes the import replaced.
	PreviousCount int

	// NoteCount is the number of notes after the import.
	NoteCount int

	DryRun bool

	// Unchanged is true when the envelope holds exactly the profile's
	// current notes and history.
	Unchanged bool
}

// Import replaces the profile's notes with the contents of an exported
// envelope. Nothing is merged. The envelope must decrypt under the current
// master key; if it does not, the profile is left unchanged.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	s, _, err := openStore(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	envelope, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrIO, opts.InputPath, err)
	}

	current := s.Memory()
	imported, err := s.Decode(envelope)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Profile:       s.Profile(),
		PreviousCount: current.Len(),
		NoteCount:     imported.Len(),
		DryRun:        opts.DryRun,
		Unchanged:     current.Equal(imported),
	}
	if opts.DryRun {
		return result, nil
	}

	if err := s.Import(envelope); err != nil {
		return nil, err
	}
	audit.Log(audit.EventImported)

	return result, nil
}
