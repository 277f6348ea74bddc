package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/warpy_users/pkg/ctxmeta"
	"github.com/Gunvolt24/warpy_users/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsRequestIDFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := logger.NewFromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	l.Infof(ctx, "user saved id=%s", "42")
	l.Warnf(context.Background(), "plain warning")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "user saved id=42" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "rid-1" {
		t.Fatalf("request_id: want rid-1, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatalf("request_id must be absent without context value")
	}
}

func TestNewZapLogger_Modes(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		if err != nil {
			t.Fatalf("NewZapLogger(%v): %v", prod, err)
		}
		if l.Base() == nil || l.Sugared() == nil {
			t.Fatalf("NewZapLogger(%v): nil logger", prod)
		}
		_ = cleanup()
	}
}
