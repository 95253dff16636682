package log

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Debug("debug")
	l.Debugf("debug %d", 1)
	l.Info("info")
	l.Infof("info %d", 1)
	l.Warn("warn")
	l.Warnf("warn %d", 1)
	l.Error("error")
	l.Errorf("error %d", 1)
	if l.With("k", "v") != nil {
		t.Error("With on a nil logger should stay nil")
	}
}

func TestNewWritesFile(t *testing.T) {
	dir := t.TempDir()
	l := New("debug", dir)
	l.With("zone", 3).Warn("drag clamped")

	b, err := os.ReadFile(l.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"drag clamped"`) || !strings.Contains(string(b), `"zone":3`) {
		t.Errorf("log file missing entry:\n%s", b)
	}
	if l.LogDir != dir {
		t.Errorf("LogDir = %q, want %q", l.LogDir, dir)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	} {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
