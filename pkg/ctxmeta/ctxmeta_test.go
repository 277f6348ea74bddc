package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/warpy_users/pkg/ctxmeta"
)

func TestRequestID(t *testing.T) {
	type otherKey struct{}
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"stored", ctxmeta.WithRequestID(context.Background(), "msg-123"), "msg-123", true},
		{"empty id not stored", ctxmeta.WithRequestID(context.Background(), ""), "", false},
		{"no value", context.Background(), "", false},
		// пустое значение по верному ключу считается отсутствующим
		{"empty stored value", context.WithValue(context.Background(), ctxmeta.KeyRequestID, ""), "", false},
		// чужой тип ключа не распознаётся
		{"foreign key", context.WithValue(context.Background(), otherKey{}, "req-xyz"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ctxmeta.RequestIDFromContext(tt.ctx)
			if id != tt.wantID || ok != tt.wantOK {
				t.Fatalf("got id=%q ok=%v, want id=%q ok=%v", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestWithRequestID_KeepsParent(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("empty id must return the same ctx")
	}
	_ = ctxmeta.WithRequestID(parent, "msg-1")
	if _, ok := ctxmeta.RequestIDFromContext(parent); ok {
		t.Fatalf("parent context must not contain request_id")
	}

	var nilCtx context.Context
	if ctx := ctxmeta.WithRequestID(nilCtx, "msg-1"); ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	if _, ok := ctxmeta.RequestIDFromContext(nilCtx); ok {
		t.Fatalf("nil ctx must not contain request_id")
	}
}

// request_id и delivery_tag одной доставки читаются независимо
func TestDeliveryMetadata(t *testing.T) {
	ctx := ctxmeta.WithDeliveryTag(ctxmeta.WithRequestID(context.Background(), "msg-7"), 42)

	if tag, ok := ctxmeta.DeliveryTagFromContext(ctx); !ok || tag != 42 {
		t.Fatalf("want tag=42, got ok=%v tag=%d", ok, tag)
	}
	if id, ok := ctxmeta.RequestIDFromContext(ctx); !ok || id != "msg-7" {
		t.Fatalf("want request id msg-7, got ok=%v id=%q", ok, id)
	}
	if _, ok := ctxmeta.DeliveryTagFromContext(context.Background()); ok {
		t.Fatalf("empty ctx must not contain delivery tag")
	}
	var nilCtx context.Context
	if _, ok := ctxmeta.DeliveryTagFromContext(nilCtx); ok {
		t.Fatalf("nil ctx must not contain delivery tag")
	}
}
