package audit

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/PolarWolf314/zlang/internal/configs"
	"github.com/jrick/logrotate/rotator"
)

const (
	// Audit events written by the workflows.
	EventOnboarded = "onboarded user"
	EventRecovered = "recovery performed"
	EventSaved     = "saved note"
	EventUndone    = "undid save"
	EventExported  = "exported memory"
	EventImported  = "imported memory"
	EventSync      = "sync probe"

	// rotateThresholdKB rolls the log once it exceeds 1 MiB.
	rotateThresholdKB = 1024

	// maxRolls is how many rolled logs are kept next to audit.log.
	maxRolls = 3

	separator = " at "
)

// Entry is a single audit log line.
type Entry struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"ts"`
}

// String formats the entry as it appears in the log, without the newline.
func (e Entry) String() string {
	return e.Event + separator + e.Timestamp.UTC().Format(time.RFC3339Nano)
}

// Log appends "<event> at <timestamp>" to the audit log.
// If logging fails it does not return an error: operations should not fail
// just because audit logging failed.
func Log(event string) {
	_ = Append(Entry{Event: event, Timestamp: time.Now().UTC()})
}

// Logf is Log with a formatted event.
func Logf(format string, args ...interface{}) {
	Log(fmt.Sprintf(format, args...))
}

// Append writes entry to the audit log, rotating it when it grows too large.
// Control characters in the event are escaped so an entry is always exactly
// one line.
func Append(entry Entry) error {
	logPath := LogPath()
	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return err
	}

	r, err := rotator.New(logPath, rotateThresholdKB, false, maxRolls)
	if err != nil {
		return err
	}
	defer r.Close()

	entry.Event = escapeControl(entry.Event)
	_, err = r.Write([]byte(entry.String() + "\n"))
	return err
}

// escapeControl replaces control characters with Go-style escapes.
func escapeControl(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case !unicode.IsControl(r):
			b.WriteRune(r)
		case r < 0x80:
			fmt.Fprintf(&b, "\\x%02x", r)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

// LogPath returns the path to the audit log file.
// Returns empty string if no data directory is configured.
func LogPath() string {
	if configs.ZlangSettings == nil || configs.ZlangSettings.DataDir == "" {
		return ""
	}
	return configs.ZlangSettings.AuditLogPath()
}

// ReadEntries reads all entries from the current audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses audit log lines. Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, scanner.Err()
}

func parseLine(line string) (Entry, bool) {
	i := strings.LastIndex(line, separator)
	if i <= 0 {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, line[i+len(separator):])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Event: line[:i], Timestamp: ts}, true
}
