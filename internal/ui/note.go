package ui

import (
	"strings"
	"time"

	"github.com/PolarWolf314/zlang/internal/memory"
)

// TimestampLayout is used wherever a note timestamp is shown.
const TimestampLayout = "2006-01-02 15:04:05 MST"

// FormatNote renders a note over several lines: value, tags (if any), timestamp.
func FormatNote(key string, note memory.Note) string {
	var b strings.Builder
	b.WriteString(Key.Sprint(key) + ": " + note.Value + "\n")
	if len(note.Tags) > 0 {
		b.WriteString("  Tags: " + formatTags(note.Tags) + "\n")
	}
	b.WriteString("  " + Muted.Sprint(note.Timestamp.Local().Format(TimestampLayout)))
	return b.String()
}

// FormatEntry renders a note as a single bullet line.
func FormatEntry(e memory.Entry) string {
	line := Info.Sprint("*") + " " + Key.Sprint(e.Key) + ": " + e.Note.Value
	if len(e.Note.Tags) > 0 {
		line += " " + Muted.Sprint("tags: "+strings.Join(e.Note.Tags, ", "))
	}
	return line
}

// FormatEntries renders a list of notes, or emptyMsg when there are none.
func FormatEntries(entries []memory.Entry, emptyMsg string) string {
	if len(entries) == 0 {
		return Warning.Sprint("⚠") + " " + emptyMsg
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = FormatEntry(e)
	}
	return strings.Join(lines, "\n")
}

// FormatTime renders t in the local zone.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

func formatTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = Highlight.Sprint(t)
	}
	return strings.Join(parts, ", ")
}
