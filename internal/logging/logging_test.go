package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6e6, time.UTC) }

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %s", "four")

	got := buf.String()
	want := "03:04:05.006 [WARN] shown 3\n03:04:05.006 [ERROR] shown four\n"
	if got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
	if l.Enabled(LevelInfo) || !l.Enabled(LevelError) {
		t.Error("Enabled disagrees with level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing %s", strings.Repeat("x", 10))
	if l.Enabled(LevelError) {
		t.Error("Discard logger enabled at error level")
	}
}
