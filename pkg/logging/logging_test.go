package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseLevel(tc.input); got != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, &buf)

	Debug("Test", "debug message")
	Info("Test", "info message")
	Warn("Test", "warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at Warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at Warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should pass the Warn filter")
	}
}

func TestErrorIncludesAttribute(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Error("Test", errors.New("boom"), "operation failed")

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Errorf("expected error attribute in output, got: %s", out)
	}
	if !strings.Contains(out, "subsystem=Test") {
		t.Errorf("expected subsystem attribute in output, got: %s", out)
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Info("Test", "fetched %d builds from %s", 3, "live")

	if !strings.Contains(buf.String(), "fetched 3 builds from live") {
		t.Errorf("expected formatted message, got: %s", buf.String())
	}
}
