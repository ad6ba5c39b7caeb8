package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// Subsystem tags for the package-level loggers.
const (
	SubsysStore     = "STOR"
	SubsysWorkflows = "FLOW"
)

// Backend fans subsystem log lines out to an optional writer and an optional
// rotated log file.
type Backend struct {
	out             io.Writer
	logRotator      *rotator.Rotator
	bknd            *slog.Backend
	defaultLogLevel slog.Level
	logLevels       map[string]slog.Level
}

// NewBackend creates a backend. debugLevel is either a single level
// ("debug") or a comma separated list of subsys=level pairs. An empty
// logFile disables file output.
func NewBackend(out io.Writer, logFile, debugLevel string) (*Backend, error) {
	var logRotator *rotator.Rotator
	if logFile != "" {
		logDir, _ := filepath.Split(logFile)
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %v", err)
		}
		var err error
		logRotator, err = rotator.New(logFile, 1024, false, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to create file rotator: %v", err)
		}
	}

	b := &Backend{
		out:             out,
		logRotator:      logRotator,
		defaultLogLevel: slog.LevelOff,
		logLevels:       make(map[string]slog.Level),
	}
	b.bknd = slog.NewBackend(b)

	if debugLevel == "" {
		return b, nil
	}
	for _, v := range strings.Split(debugLevel, ",") {
		fields := strings.Split(v, "=")
		switch len(fields) {
		case 1:
			level, ok := slog.LevelFromString(fields[0])
			if !ok {
				return nil, fmt.Errorf("unknown log level %q", fields[0])
			}
			b.defaultLogLevel = level
		case 2:
			level, ok := slog.LevelFromString(fields[1])
			if !ok {
				return nil, fmt.Errorf("unknown log level %q", fields[1])
			}
			b.logLevels[fields[0]] = level
		default:
			return nil, fmt.Errorf("unable to parse %q as subsys=level "+
				"debuglevel string", v)
		}
	}

	return b, nil
}

func (b *Backend) Write(p []byte) (int, error) {
	if b.out != nil {
		b.out.Write(p)
	}
	if b.logRotator != nil {
		b.logRotator.Write(p)
	}
	return len(p), nil
}

// Logger returns a logger for subsys at its configured level.
func (b *Backend) Logger(subsys string) slog.Logger {
	l := b.bknd.Logger(subsys)
	if level, ok := b.logLevels[subsys]; ok {
		l.SetLevel(level)
	} else {
		l.SetLevel(b.defaultLogLevel)
	}
	return l
}

// Close flushes and closes the log file, if any.
func (b *Backend) Close() error {
	if b.logRotator == nil {
		return nil
	}
	return b.logRotator.Close()
}
