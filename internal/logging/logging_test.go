package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		if err != nil {
			t.Errorf("ParseLevel(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if level != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := SetupLogger(Options{Level: slog.LevelWarn, Output: &buf})
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("unknown summary kind", "kind", "median")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info record to be filtered, got %q", out)
	}
	if !strings.Contains(out, "kind=median") {
		t.Errorf("expected warning with attributes, got %q", out)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSeqURL, "http://localhost:5341")

	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Level != slog.LevelDebug || opts.SeqURL != "http://localhost:5341" {
		t.Errorf("unexpected options: %+v", opts)
	}
}

type recordingHandler struct {
	level   slog.Level
	records []string
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool { return level >= h.level }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Message)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandlerRespectsEachLevel(t *testing.T) {
	verbose := &recordingHandler{level: slog.LevelDebug}
	quiet := &recordingHandler{level: slog.LevelError}
	logger := slog.New(&multiHandler{handlers: []slog.Handler{verbose, quiet}})

	logger.Debug("fill formula failed")
	logger.Error("failed to bind")

	if len(verbose.records) != 2 {
		t.Errorf("expected 2 records in verbose handler, got %v", verbose.records)
	}
	if len(quiet.records) != 1 || quiet.records[0] != "failed to bind" {
		t.Errorf("expected only the error in quiet handler, got %v", quiet.records)
	}
}
