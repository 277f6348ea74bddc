package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// spanContext — контекст активного спана; false, если спана нет или он невалиден
// (например, трейсинг выключен и доставка пришла без traceparent).
func spanContext(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

func TraceIDFromContext(ctx context.Context) (string, bool) {
	if sc, ok := spanContext(ctx); ok {
		return sc.TraceID().String(), true
	}
	return "", false
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if sc, ok := spanContext(ctx); ok {
		return sc.SpanID().String(), true
	}
	return "", false
}

// TraceFields — trace_id и span_id одним вызовом для логгера.
func TraceFields(ctx context.Context) (traceID, spanID string, ok bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
