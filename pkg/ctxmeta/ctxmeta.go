// Пакет ctxmeta — нейтральный слой для метаданных, которые прокидываются через context.Context
// (request_id HTTP-запроса или AMQP-доставки, delivery_tag, trace_id).
// HTTP-слой, AMQP-обработчики и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID   ctxKey = "request_id"
	KeyDeliveryTag ctxKey = "delivery_tag"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDeliveryTag кладёт delivery tag AMQP-доставки в контекст.
func WithDeliveryTag(ctx context.Context, tag uint64) context.Context {
	if ctx == nil {
		return ctx
	}
	return context.WithValue(ctx, KeyDeliveryTag, tag)
}

// DeliveryTagFromContext достаёт delivery tag из контекста.
func DeliveryTagFromContext(ctx context.Context) (uint64, bool) {
	if ctx == nil {
		return 0, false
	}
	v, ok := ctx.Value(KeyDeliveryTag).(uint64)
	return v, ok
}
