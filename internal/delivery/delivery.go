// Пакет delivery — обработчики AMQP-доставок очереди user.request.
// Обработчик решает судьбу доставки (Ack/Nack) по результату бизнес-логики;
// цикл потребления (internal/rabbitmq) результат не анализирует.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/internal/rabbitmq"
	"github.com/Gunvolt24/warpy_users/pkg/ctxmeta"
	"github.com/Gunvolt24/warpy_users/pkg/telemetry"
)

const (
	ModePersist = "persist"
	ModeDryRun  = "dry-run"

	defaultProcessTimeout = 5 * time.Second
	tracerName            = "github.com/Gunvolt24/warpy_users/internal/delivery"
)

// ErrUnknownMode — HANDLER_MODE не соответствует ни одному обработчику.
var ErrUnknownMode = errors.New("unknown handler mode")

// userCreator — бизнес-логика создания пользователя (usecase.UserService).
type userCreator interface {
	CreateFromMessage(ctx context.Context, raw []byte) (string, error)
}

// Options — общие параметры обработчиков.
type Options struct {
	Queue          string
	ProcessTimeout time.Duration
}

// New — выбор обработчика по режиму: persist (сохранение) или dry-run (только проверка).
func New(mode string, creator userCreator, validator ports.UserValidator, log ports.Logger, opts Options) (rabbitmq.Handler, error) {
	switch mode {
	case ModePersist, "":
		if creator == nil {
			return nil, fmt.Errorf("%s handler: user creator is nil", ModePersist)
		}
		return NewPersisting(creator, log, opts), nil
	case ModeDryRun:
		if validator == nil {
			return nil, fmt.Errorf("%s handler: validator is nil", ModeDryRun)
		}
		return NewDryRun(validator, log, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// requestID — MessageId, затем CorrelationId, иначе сгенерированный uuid.
func requestID(d *amqp.Delivery) string {
	if d.MessageId != "" {
		return d.MessageId
	}
	if d.CorrelationId != "" {
		return d.CorrelationId
	}
	return uuid.NewString()
}

// startDelivery — контекст доставки: request_id, delivery_tag и span,
// продолжающий trace издателя, если в заголовках есть traceparent.
func startDelivery(ctx context.Context, d *amqp.Delivery, queue, op string) (context.Context, trace.Span) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, telemetry.AMQPHeaders(d.Headers))

	rid := requestID(d)
	ctx = ctxmeta.WithRequestID(ctx, rid)
	ctx = ctxmeta.WithDeliveryTag(ctx, d.DeliveryTag)

	ctx, span := otel.Tracer(tracerName).Start(ctx, queue+" "+op,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination.name", queue),
			attribute.String("messaging.message.id", rid),
			attribute.Int64("messaging.rabbitmq.delivery_tag", int64(d.DeliveryTag)),
			attribute.Bool("messaging.rabbitmq.redelivered", d.Redelivered),
		),
	)
	return ctx, span
}
