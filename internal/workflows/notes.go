package workflows

import (
	"context"

	"github.com/PolarWolf314/zlang/internal/audit"
	"github.com/PolarWolf314/zlang/internal/memory"
)

// SaveOptions configures the save workflow.
type SaveOptions struct {
	// Key identifies the note. Any text, including empty, is accepted.
	Key string

	// Value is the note body.
	Value string

	// Tags labels the note.
	Tags []string

	// Profile overrides the active profile when set.
	Profile string
}

// SaveResult contains the outcome of a save operation.
type SaveResult struct {
	Profile string
	Key     string
	Note    memory.Note

	// Replaced indicates a note already existed under Key.
	Replaced bool
}

// Save stores a note in the profile, replacing any note under the same key.
// The note is on disk when Save returns; on error nothing changed.
func Save(ctx context.Context, opts SaveOptions) (*SaveResult, error) {
	s, _, err := openStore(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	_, replaced := s.Get(opts.Key)
	if err := s.Save(opts.Key, opts.Value, opts.Tags); err != nil {
		return nil, err
	}
	note, _ := s.Get(opts.Key)

	log.Debugf("Saved %q in profile %q", opts.Key, s.Profile())
	audit.Log(audit.EventSaved)

	return &SaveResult{
		Profile:  s.Profile(),
		Key:      opts.Key,
		Note:     note,
		Replaced: replaced,
	}, nil
}

// GetOptions configures the get workflow.
type GetOptions struct {
	Key     string
	Profile string
}

// GetResult contains the outcome of a get operation.
type GetResult struct {
	Profile string
	Key     string
	Note    memory.Note

	// Found is false when no note exists under Key.
	Found bool
}

// Get looks up a single note.
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	s, _, err := openStore(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	note, found := s.Get(opts.Key)
	return &GetResult{
		Profile: s.Profile(),
		Key:     opts.Key,
		Note:    note,
		Found:   found,
	}, nil
}

// ListOptions configures the show, search and tag workflows.
type ListOptions struct {
	// Query is the search keyword or the tag to filter by. Show ignores it.
	Query string

	Profile string
}

// ListResult contains the notes selected by show, search or tag, sorted by
// key.
type ListResult struct {
	Profile string
	Entries []memory.Entry
}

func list(ctx context.Context, profile string, fn func(m *memory.Memory) []memory.Entry) (*ListResult, error) {
	s, _, err := openStore(ctx, profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return &ListResult{
		Profile: s.Profile(),
		Entries: fn(s.Memory()),
	}, nil
}

// Show returns every note in the profile.
func Show(ctx context.Context, opts ListOptions) (*ListResult, error) {
	return list(ctx, opts.Profile, func(m *memory.Memory) []memory.Entry {
		return m.Entries()
	})
}

// Search returns the notes whose key, value or any tag contains Query.
// Matching is case-sensitive.
func Search(ctx context.Context, opts ListOptions) (*ListResult, error) {
	return list(ctx, opts.Profile, func(m *memory.Memory) []memory.Entry {
		return m.Search(opts.Query)
	})
}

// FilterByTag returns the notes carrying exactly the tag Query.
func FilterByTag(ctx context.Context, opts ListOptions) (*ListResult, error) {
	return list(ctx, opts.Profile, func(m *memory.Memory) []memory.Entry {
		return m.FilterByTag(opts.Query)
	})
}

// UndoOptions configures the undo workflow.
type UndoOptions struct {
	Profile string
}

// UndoResult contains the outcome of an undo operation.
type UndoResult struct {
	Profile string

	// Entry is the history entry that was reverted, e.g. "save:groceries".
	Entry string

	// Undone is false when the history was empty and nothing changed.
	Undone bool
}

// Undo reverts the most recent save by deleting its key. The previous value
// of a key saved twice is not restored.
func Undo(ctx context.Context, opts UndoOptions) (*UndoResult, error) {
	s, _, err := openStore(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	entry, ok, err := s.Undo()
	if err != nil {
		return nil, err
	}
	if ok {
		audit.Log(audit.EventUndone)
	}

	return &UndoResult{
		Profile: s.Profile(),
		Entry:   entry,
		Undone:  ok,
	}, nil
}
