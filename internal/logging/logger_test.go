package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	logger, err := New(Options{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerRendersComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)
	handler := newConsoleHandler(&buf, levelVar)
	logger := slog.New(handler)
	scoped := NewComponentLogger(logger, "tokenizer")
	scoped.Info("parsed filename", String("token_count", "4"))

	out := buf.String()
	if !strings.Contains(out, "[tokenizer]") {
		t.Fatalf("expected component tag in output, got %q", out)
	}
	if !strings.Contains(out, "parsed filename") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "token_count=4") {
		t.Fatalf("expected attribute in output, got %q", out)
	}
}

func TestNewComponentLoggerHandlesNilBase(t *testing.T) {
	logger := NewComponentLogger(nil, "predictor")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	logger.Info("should not panic")
}

func TestDecisionAttrs(t *testing.T) {
	attrs := DecisionAttrs("routing", "auto_classify", "confidence above threshold")
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
}
