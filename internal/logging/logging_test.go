// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decred/slog"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		wantSink  slog.Level
		wantMain  slog.Level
		wantError bool
	}{
		{name: "empty", level: "", wantSink: slog.LevelInfo, wantMain: slog.LevelInfo},
		{name: "single", level: "debug", wantSink: slog.LevelDebug, wantMain: slog.LevelDebug},
		{name: "override", level: "warn,SINK=trace", wantSink: slog.LevelTrace, wantMain: slog.LevelWarn},
		{name: "spaces", level: "error, SINK=info", wantSink: slog.LevelInfo, wantMain: slog.LevelError},
		{name: "bad level", level: "loud", wantError: true},
		{name: "bad subsystem level", level: "info,SINK=loud", wantError: true},
		{name: "bad pair", level: "info,SINK=debug=x", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := New("", tt.level, nil)
			if tt.wantError {
				if err == nil {
					t.Errorf("New(%q) error = nil, want error", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.level, err)
			}

			if got := b.Logger(SubsysSink).Level(); got != tt.wantSink {
				t.Errorf("SINK level = %v, want %v", got, tt.wantSink)
			}
			if got := b.Logger(SubsysMain).Level(); got != tt.wantMain {
				t.Errorf("MAIN level = %v, want %v", got, tt.wantMain)
			}
		})
	}
}

func TestBackend_LoggerCached(t *testing.T) {
	t.Parallel()

	b, err := New("", "info", nil)
	if err != nil {
		t.Fatal(err)
	}

	l := b.Logger(SubsysSink)
	l.SetLevel(slog.LevelTrace)
	if got := b.Logger(SubsysSink).Level(); got != slog.LevelTrace {
		t.Errorf("second Logger() level = %v, want the same logger at %v", got, slog.LevelTrace)
	}
}

func TestBackend_WritesStdOut(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	b, err := New("", "info,SINK=error", &out)
	if err != nil {
		t.Fatal(err)
	}

	b.Logger(SubsysMain).Infof("hello %d", 1)
	b.Logger(SubsysSink).Infof("filtered")
	b.Logger(SubsysSink).Errorf("kept")

	got := out.String()
	if !strings.Contains(got, "[INF] MAIN: hello 1") {
		t.Errorf("missing MAIN line in %q", got)
	}
	if strings.Contains(got, "filtered") {
		t.Errorf("SINK info line not filtered: %q", got)
	}
	if !strings.Contains(got, "[ERR] SINK: kept") {
		t.Errorf("missing SINK error line in %q", got)
	}
}

func TestBackend_WritesFile(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "logs", "a2dpsink.log")
	b, err := New(logFile, "info", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	b.Logger(SubsysMain).Infof("to file")
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "[INF] MAIN: to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestBackend_CloseWithoutFile(t *testing.T) {
	t.Parallel()

	b, _ := New("", "", nil)
	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
