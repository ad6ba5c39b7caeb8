package workflows

import (
	"context"
	"testing"
	"time"

	"github.com/PolarWolf314/zlang/internal/audit"
	kerrors "github.com/PolarWolf314/zlang/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAuditEntries(t *testing.T, entries ...audit.Entry) {
	t.Helper()
	for _, e := range entries {
		require.NoError(t, audit.Append(e))
	}
}

func TestLog_Filters(t *testing.T) {
	setupSettings(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	writeAuditEntries(t,
		audit.Entry{Event: "onboarded user", Timestamp: now.Add(-10 * 24 * time.Hour)},
		audit.Entry{Event: "saved a", Timestamp: now.Add(-3 * 24 * time.Hour)},
		audit.Entry{Event: "saved b", Timestamp: now.Add(-2 * time.Hour)},
		audit.Entry{Event: "undid save:b", Timestamp: now.Add(-time.Hour)},
	)
	ctx := context.Background()

	all, err := Log(ctx, LogOptions{Now: now})
	require.NoError(t, err)
	assert.Len(t, all.Entries, 4)
	assert.Equal(t, 4, all.TotalEntriesBeforeFilter)

	saved, err := Log(ctx, LogOptions{Events: "SAVED", Now: now})
	require.NoError(t, err)
	assert.Len(t, saved.Entries, 2)

	recent, err := Log(ctx, LogOptions{Since: "1d", Now: now})
	require.NoError(t, err)
	require.Len(t, recent.Entries, 2)
	assert.Equal(t, "saved b", recent.Entries[0].Event)

	byDate, err := Log(ctx, LogOptions{Until: "2026-03-07", Now: now})
	require.NoError(t, err)
	require.Len(t, byDate.Entries, 2)
	assert.Equal(t, "saved a", byDate.Entries[1].Event)

	latest, err := Log(ctx, LogOptions{Limit: 1, Reverse: true, Now: now})
	require.NoError(t, err)
	require.Len(t, latest.Entries, 1)
	assert.Equal(t, "undid save:b", latest.Entries[0].Event)

	tail, err := Log(ctx, LogOptions{Limit: 2, Now: now})
	require.NoError(t, err)
	require.Len(t, tail.Entries, 2)
	assert.Equal(t, "saved b", tail.Entries[0].Event)
}

func TestLog_InvalidDate(t *testing.T) {
	setupSettings(t)
	writeAuditEntries(t, audit.Entry{Event: "saved a", Timestamp: time.Now()})

	_, err := Log(context.Background(), LogOptions{Since: "last tuesday"})
	assert.ErrorIs(t, err, kerrors.ErrInvalidDateFormat)
}

func TestLog_MissingLog(t *testing.T) {
	setupSettings(t)

	result, err := Log(context.Background(), LogOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}
