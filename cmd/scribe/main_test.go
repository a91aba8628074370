package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/scribe"
)

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run([]string{"-version"}, &out, &errOut); err != nil {
		t.Fatalf("run -version: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), "scribe "+scribe.VersionTag(); got != want {
		t.Fatalf("version output: got %q, want %q", got, want)
	}
}

func TestRun_RequiresOneFile(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(nil, &out, &errOut); err == nil {
		t.Fatalf("run without file: got nil error")
	}
	if !strings.Contains(errOut.String(), "usage: scribe") {
		t.Fatalf("usage not printed: %q", errOut.String())
	}
}

func TestResolveLogConfig(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tc := range tests {
		lc, err := resolveLogConfig("", tc.level)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("level %q: got nil error", tc.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("level %q: %v", tc.level, err)
		}
		if lc.level != tc.want {
			t.Fatalf("level %q: got %v, want %v", tc.level, lc.level, tc.want)
		}
	}
}

func TestResolveLogConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.log")
	lc, err := resolveLogConfig(path, "debug")
	if err != nil {
		t.Fatalf("resolveLogConfig: %v", err)
	}
	lc.logger().Debug("hello", "k", 1)
	if err := lc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := resolveLogConfig(filepath.Join(path, "nested"), "info"); err == nil {
		t.Fatalf("log file under a regular file: got nil error")
	}
}
