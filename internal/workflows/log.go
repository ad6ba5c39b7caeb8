package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/zlang/internal/audit"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/xhit/go-str2duration/v2"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Events filters entries whose event starts with one of these
	// (comma-separated, case-insensitive), e.g. "saved,undid".
	Events string

	// Since filters entries at or after this point: a YYYY-MM-DD date or a
	// duration back from now such as "36h" or "7d".
	Since string

	// Until filters entries on or before this YYYY-MM-DD date, or before a
	// duration back from now.
	Until string

	// Now is the reference time for relative filters. Zero means time.Now.
	Now time.Time
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the audit log. A missing log yields no entries.
//
// Returns ErrInvalidDateFormat if Since or Until cannot be parsed.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	if len(entries) == 0 {
		result.Entries = entries
		return result, nil
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := entries

	if opts.Events != "" {
		events := strings.Split(opts.Events, ",")
		for i := range events {
			events[i] = strings.TrimSpace(events[i])
		}
		filtered = filterByEvents(filtered, events)
	}

	if opts.Since != "" {
		sinceTime, err := parseLogBound(opts.Since, now, false)
		if err != nil {
			return nil, fmt.Errorf("%w: --since must be YYYY-MM-DD or a duration like 7d", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterSince(filtered, sinceTime)
	}

	if opts.Until != "" {
		untilTime, err := parseLogBound(opts.Until, now, true)
		if err != nil {
			return nil, fmt.Errorf("%w: --until must be YYYY-MM-DD or a duration like 7d", kerrors.ErrInvalidDateFormat)
		}
		filtered = filterUntil(filtered, untilTime)
	}

	// Apply ordering.
	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// Apply limit.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			// When reversed, limit takes first N (most recent).
			filtered = filtered[:opts.Limit]
		} else {
			// When not reversed, limit takes last N (most recent).
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

// parseLogBound parses a date or a relative duration. A date used as an
// upper bound covers the entire day.
func parseLogBound(raw string, now time.Time, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, nil
	}
	d, err := str2duration.ParseDuration(raw)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}

// filterByEvents keeps entries whose event starts with one of events.
func filterByEvents(entries []audit.Entry, events []string) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		event := strings.ToLower(e.Event)
		for _, prefix := range events {
			if prefix != "" && strings.HasPrefix(event, strings.ToLower(prefix)) {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

// filterSince keeps entries at or after since.
func filterSince(entries []audit.Entry, since time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		if !e.Timestamp.Before(since) {
			result = append(result, e)
		}
	}
	return result
}

// filterUntil keeps entries at or before until.
func filterUntil(entries []audit.Entry, until time.Time) []audit.Entry {
	var result []audit.Entry
	for _, e := range entries {
		if !e.Timestamp.After(until) {
			result = append(result, e)
		}
	}
	return result
}
