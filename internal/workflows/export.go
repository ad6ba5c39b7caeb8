package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/zlang/internal/audit"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// OutputPath is where the envelope is written.
	// If empty, defaults to zlang-<profile>-YYYY-MM-DD.bin.
	OutputPath string

	Profile string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	Profile    string
	OutputPath string
	NoteCount  int
}

// Export writes the profile's notes to a standalone envelope encrypted under
// the current master key. The store itself is not modified.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	s, _, err := openStore(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("zlang-%s-%s.bin", s.Profile(), time.Now().Format("2006-01-02"))
	}

	if err := s.ExportTo(outputPath); err != nil {
		return nil, err
	}

	audit.Log(audit.EventExported)

	return &ExportResult{
		Profile:    s.Profile(),
		OutputPath: outputPath,
		NoteCount:  len(s.Entries()),
	}, nil
}
