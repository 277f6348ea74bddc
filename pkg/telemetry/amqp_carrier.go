package telemetry

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = AMQPHeaders(nil)

// AMQPHeaders — заголовки AMQP-сообщения как носитель trace-контекста (traceparent, baggage).
type AMQPHeaders amqp.Table

func (h AMQPHeaders) Get(key string) string {
	switch v := h[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// Set — для nil-таблицы ничего не делает.
func (h AMQPHeaders) Set(key, value string) {
	if h == nil {
		return
	}
	h[key] = value
}

func (h AMQPHeaders) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}
