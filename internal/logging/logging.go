// SPDX-License-Identifier: EPL-2.0

// Package logging builds the slog backend used by the a2dpsink commands:
// output to a writer (usually stdout) and, optionally, a rotated log file,
// with a level per subsystem.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// Subsystem tags.
const (
	SubsysSink = "SINK"
	SubsysMain = "MAIN"
)

const (
	rotateThresholdKB = 1024
	maxRolls          = 10
)

// Backend fans log lines out to its writers and hands out one logger per
// subsystem.
type Backend struct {
	mtx sync.Mutex

	stdOut          io.Writer
	logRotator      *rotator.Rotator
	bknd            *slog.Backend
	defaultLogLevel slog.Level
	logLevels       map[string]slog.Level
	loggers         map[string]slog.Logger
}

// New creates a backend. logFile may be empty to log only to stdOut, and
// stdOut may be nil to log only to the file.
//
// debugLevel is either a single level ("info") or a default level followed
// by subsystem overrides: "info,SINK=debug".
func New(logFile, debugLevel string, stdOut io.Writer) (*Backend, error) {
	b := &Backend{
		stdOut:          stdOut,
		defaultLogLevel: slog.LevelInfo,
		logLevels:       make(map[string]slog.Level),
		loggers:         make(map[string]slog.Logger),
	}

	if err := b.parseLevels(debugLevel); err != nil {
		return nil, err
	}

	if logFile != "" {
		logDir, _ := filepath.Split(logFile)
		if logDir != "" {
			if err := os.MkdirAll(logDir, 0o700); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		r, err := rotator.New(logFile, rotateThresholdKB, false, maxRolls)
		if err != nil {
			return nil, fmt.Errorf("failed to create file rotator: %w", err)
		}
		b.logRotator = r
	}

	b.bknd = slog.NewBackend(b)
	return b, nil
}

func (b *Backend) parseLevels(debugLevel string) error {
	if debugLevel == "" {
		return nil
	}

	for _, v := range strings.Split(debugLevel, ",") {
		fields := strings.Split(strings.TrimSpace(v), "=")
		switch len(fields) {
		case 1:
			level, ok := slog.LevelFromString(fields[0])
			if !ok {
				return fmt.Errorf("unknown log level %q", fields[0])
			}
			b.defaultLogLevel = level
		case 2:
			level, ok := slog.LevelFromString(fields[1])
			if !ok {
				return fmt.Errorf("unknown log level %q for subsystem %s", fields[1], fields[0])
			}
			b.logLevels[fields[0]] = level
		default:
			return fmt.Errorf("unable to parse %q as subsys=level debuglevel string", v)
		}
	}
	return nil
}

// Write implements io.Writer for the slog backend. Errors from either
// destination are dropped; logging must not fail the caller.
func (b *Backend) Write(p []byte) (int, error) {
	if b.stdOut != nil {
		_, _ = b.stdOut.Write(p)
	}
	if b.logRotator != nil {
		_, _ = b.logRotator.Write(p)
	}
	return len(p), nil
}

// Logger returns the logger of subsys, creating it at its configured level
// on first use.
func (b *Backend) Logger(subsys string) slog.Logger {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if l, ok := b.loggers[subsys]; ok {
		return l
	}

	l := b.bknd.Logger(subsys)
	if level, ok := b.logLevels[subsys]; ok {
		l.SetLevel(level)
	} else {
		l.SetLevel(b.defaultLogLevel)
	}
	b.loggers[subsys] = l
	return l
}

// Close flushes and closes the log file, if any.
func (b *Backend) Close() error {
	if b.logRotator == nil {
		return nil
	}
	return b.logRotator.Close()
}
