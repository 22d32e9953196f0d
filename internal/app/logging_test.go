package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"verbose", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "test"})

	logger.WithComponent("loop").WithField("batch", 3).Info("drained", "items", 2)

	out := buf.String()
	for _, want := range []string{"level=INFO", `msg=drained`, "app=test", "component=loop", "batch=3", "items=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"path": "keys.toml", "keymaps": 2}).Warn("loaded")

	out := buf.String()
	if !strings.Contains(out, "path=keys.toml") || !strings.Contains(out, "keymaps=2") {
		t.Errorf("output %q missing fields", out)
	}
	if strings.Contains(out, "app=") {
		t.Errorf("output %q has an app attribute without a prefix", out)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	child := logger.WithComponent("focus")

	child.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	logger.SetLevel(LogLevelDebug)
	child.Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("derived logger did not follow SetLevel: %q", buf.String())
	}

	buf.Reset()
	child.SetLevel(LogLevelError)
	logger.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("warn record written at error level: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("ignored", "k", "v")
	NullLogger.WithComponent("x").Info("ignored")
}

func TestOpenLogOutput(t *testing.T) {
	w, err := OpenLogOutput("")
	if err != nil {
		t.Fatalf("OpenLogOutput(\"\") error = %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Errorf("discard write error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("discard close error = %v", err)
	}

	path := t.TempDir() + "/termkit.log"
	f, err := OpenLogOutput(path)
	if err != nil {
		t.Fatalf("OpenLogOutput(%q) error = %v", path, err)
	}
	logger := NewLogger(LoggerConfig{Output: f})
	logger.Info("to file")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenLogOutput(t.TempDir() + "/missing/dir/x.log"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
