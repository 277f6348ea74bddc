package delivery

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/internal/repo/mongostore"
	"github.com/Gunvolt24/warpy_users/pkg/metrics"
	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

// outcome — что сделать с доставкой после обработки.
type outcome int

const (
	outcomeAck     outcome = iota // обработано
	outcomeInvalid                // тело не прошло декодирование/проверку, повтор бессмысленен
	outcomeRequeue                // временная ошибка хранилища, вернуть в очередь
	outcomeDrop                   // прочие ошибки, не повторять
)

func (o outcome) String() string {
	switch o {
	case outcomeAck:
		return "ack"
	case outcomeInvalid:
		return "invalid"
	case outcomeRequeue:
		return "requeued"
	default:
		return "dropped"
	}
}

// outcomeOf — решение по ошибке бизнес-логики.
func outcomeOf(err error) outcome {
	switch {
	case err == nil:
		return outcomeAck
	case errors.Is(err, validate.ErrInvalidUser):
		return outcomeInvalid
	case errors.Is(err, mongostore.ErrAddUser) && mongostore.KindOf(err).Transient():
		return outcomeRequeue
	default:
		return outcomeDrop
	}
}

// settle — Ack/Nack доставки и метрики. Ошибки подтверждения только логируются.
func settle(ctx context.Context, log ports.Logger, queue string, d *amqp.Delivery, o outcome) {
	var err error
	switch o {
	case outcomeAck:
		metrics.AMQPDeliveriesProcessed.WithLabelValues(queue).Inc()
		err = d.Ack(false)
	case outcomeRequeue:
		metrics.AMQPDeliveriesFailed.WithLabelValues(queue, o.String()).Inc()
		err = d.Nack(false, true)
	default:
		metrics.AMQPDeliveriesFailed.WithLabelValues(queue, o.String()).Inc()
		err = d.Nack(false, false)
	}
	if err != nil {
		log.Warnf(ctx, "%s failed delivery_tag=%d: %v", o, d.DeliveryTag, err)
	}
}
