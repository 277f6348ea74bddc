package delivery

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/internal/rabbitmq"
)

var _ rabbitmq.Handler = (*Persisting)(nil)

// Persisting — сохраняет пользователя из каждой доставки.
type Persisting struct {
	creator        userCreator
	log            ports.Logger
	queue          string
	processTimeout time.Duration
}

func NewPersisting(creator userCreator, log ports.Logger, opts Options) *Persisting {
	pt := opts.ProcessTimeout
	if pt <= 0 {
		pt = defaultProcessTimeout
	}
	return &Persisting{creator: creator, log: log, queue: opts.Queue, processTimeout: pt}
}

// HandleDelivery — обработка с таймаутом, затем:
// успех → Ack; невалидное тело → Nack без возврата; временная ошибка хранилища → Nack с возвратом;
// прочее → Nack без возврата. Ошибка при остановке потребителя (родительский ctx отменён)
// возвращает сообщение в очередь.
func (h *Persisting) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	ctx, span := startDelivery(ctx, &d, h.queue, "persist")
	defer span.End()

	ctxTimeout, cancel := context.WithTimeout(ctx, h.processTimeout)
	id, err := h.creator.CreateFromMessage(ctxTimeout, d.Body)
	cancel()

	o := outcomeOf(err)
	if o == outcomeDrop && ctx.Err() != nil {
		o = outcomeRequeue
	}
	span.SetAttributes(attribute.String("delivery.outcome", o.String()))

	switch o {
	case outcomeAck:
		span.SetAttributes(attribute.String("user.id", id))
		h.log.Infof(ctx, "user persisted id=%s", id)
	case outcomeInvalid:
		span.SetStatus(codes.Error, "invalid message")
		h.log.Warnf(ctx, "invalid message delivery_tag=%d: %v (dropped)", d.DeliveryTag, err)
	case outcomeRequeue:
		span.RecordError(err)
		span.SetStatus(codes.Error, "transient store failure")
		h.log.Warnf(ctx, "store unavailable delivery_tag=%d: %v (requeued)", d.DeliveryTag, err)
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		h.log.Errorf(ctx, "persist failed delivery_tag=%d: %v (dropped)", d.DeliveryTag, err)
	}

	settle(ctx, h.log, h.queue, &d, o)
}
