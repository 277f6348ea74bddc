package delivery

import (
	"errors"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type nackCall struct {
	tag     uint64
	requeue bool
}

// ackRecorder — amqp.Acknowledger, запоминающий решения обработчика.
type ackRecorder struct {
	mu    sync.Mutex
	acks  []uint64
	nacks []nackCall
	fail  bool
}

var _ amqp.Acknowledger = (*ackRecorder)(nil)

func (a *ackRecorder) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acks = append(a.acks, tag)
	if a.fail {
		return errors.New("channel closed")
	}
	return nil
}

func (a *ackRecorder) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacks = append(a.nacks, nackCall{tag: tag, requeue: requeue})
	if a.fail {
		return errors.New("channel closed")
	}
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func newDelivery(ack amqp.Acknowledger, tag uint64, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: []byte(body)}
}
