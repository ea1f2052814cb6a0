package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitConsoleLoggerLevels(t *testing.T) {
	quiet, err := InitConsoleLogger(false, true)
	if err != nil {
		t.Fatalf("InitConsoleLogger(false) failed: %v", err)
	}
	defer quiet.Sync()
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Error("non-verbose logger should not log at debug level")
	}

	verbose, err := InitConsoleLogger(true, true)
	if err != nil {
		t.Fatalf("InitConsoleLogger(true) failed: %v", err)
	}
	defer verbose.Sync()
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should log at debug level")
	}
}
