package delivery

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/codes"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/internal/rabbitmq"
	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

var _ rabbitmq.Handler = (*DryRun)(nil)

// DryRun — только декодирует и проверяет тело, в хранилище ничего не пишет.
type DryRun struct {
	validator ports.UserValidator
	log       ports.Logger
	queue     string
}

func NewDryRun(validator ports.UserValidator, log ports.Logger, opts Options) *DryRun {
	return &DryRun{validator: validator, log: log, queue: opts.Queue}
}

func (h *DryRun) HandleDelivery(ctx context.Context, d amqp.Delivery) {
	ctx, span := startDelivery(ctx, &d, h.queue, "validate")
	defer span.End()

	req, err := validate.ValidateUserFromJSON(ctx, h.validator, d.Body)
	if err != nil {
		span.SetStatus(codes.Error, "invalid message")
		h.log.Warnf(ctx, "dry-run: invalid message delivery_tag=%d: %v", d.DeliveryTag, err)
		settle(ctx, h.log, h.queue, &d, outcomeInvalid)
		return
	}

	h.log.Infof(ctx, "dry-run: valid user username=%s email=%s", req.Username, req.Email)
	settle(ctx, h.log, h.queue, &d, outcomeAck)
}
