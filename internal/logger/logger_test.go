package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("local", "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn must be enabled")
	}
}

func TestNewLogger_Errors(t *testing.T) {
	if _, err := NewLogger("staging"); err == nil {
		t.Error("expected error for unknown environment")
	}
	if _, err := NewLogger("prod", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewStderrLogger(t *testing.T) {
	quiet, err := NewStderrLogger(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be disabled without debug")
	}

	verbose, err := NewStderrLogger(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be enabled with debug")
	}
}

func TestContextLogger(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}
	l := zap.NewExample()
	if got := FromContext(ContextWithLogger(context.Background(), l)); got != l {
		t.Error("logger not stored in context")
	}
}
