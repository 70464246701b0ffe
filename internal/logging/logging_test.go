package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{level: "debug", format: "console", want: zapcore.DebugLevel},
		{level: "info", format: "json", want: zapcore.InfoLevel},
		{level: "WARN", format: "", want: zapcore.WarnLevel},
	}
	for _, tc := range cases {
		logger, err := New(tc.level, tc.format)
		if err != nil {
			t.Fatalf("new(%q, %q): %v", tc.level, tc.format, err)
		}
		if !logger.Core().Enabled(tc.want) {
			t.Errorf("level %q: expected %s enabled", tc.level, tc.want)
		}
		if tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1) {
			t.Errorf("level %q: expected %s disabled", tc.level, tc.want-1)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatalf("expected unknown level error")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestNamed_NilLogger(t *testing.T) {
	if Named(nil, "server") == nil {
		t.Fatalf("expected no-op logger")
	}
}
