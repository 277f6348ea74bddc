package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/pkg/metrics"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler — обработчик одной доставки. Результат сообщается через Ack/Nack самой доставки.
type Handler interface {
	HandleDelivery(ctx context.Context, d amqp.Delivery)
}

// HandlerFunc — адаптер функции к Handler.
type HandlerFunc func(ctx context.Context, d amqp.Delivery)

func (f HandlerFunc) HandleDelivery(ctx context.Context, d amqp.Delivery) { f(ctx, d) }

// channel — подмножество *amqp.Channel, которое использует клиент.
type channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// connection — подмножество *amqp.Connection.
type connection interface {
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

// dialFunc — установка соединения и открытие канала; подменяется в тестах.
type dialFunc func(uri string, cfg amqp.Config) (connection, channel, error)

func dialAMQP(uri string, cfg amqp.Config) (connection, channel, error) {
	conn, err := amqp.DialConfig(uri, cfg)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

// Client — соединение с брокером и один канал для потребления очереди.
type Client struct {
	cfg  ClientConfig
	log  ports.Logger
	dial dialFunc

	mu   sync.Mutex
	conn connection
	ch   channel

	closeOnce sync.Once
}

// NewClient — конструктор. Сетевых операций не выполняет.
func NewClient(cfg ClientConfig, log ports.Logger) *Client {
	return &Client{cfg: cfg.withDefaults(), log: log, dial: dialAMQP}
}

// Queue — имя потребляемой очереди.
func (c *Client) Queue() string { return c.cfg.Queue }

// Connect — соединение с брокером, открытие канала и Qos.
// Пустой URI отклоняется до любых сетевых операций.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.URI == "" {
		return ErrMissingURI
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	amqpCfg := amqp.Config{
		Dial:       amqp.DefaultDial(c.cfg.DialTimeout),
		Properties: amqp.NewConnectionProperties(),
	}
	amqpCfg.Properties.SetClientConnectionName(c.cfg.ConnectionName)

	conn, ch, err := c.dial(c.cfg.URI, amqpCfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	if c.cfg.Prefetch > 0 {
		if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("%w: qos: %w", ErrConnect, err)
		}
	}

	c.mu.Lock()
	c.conn, c.ch = conn, ch
	c.mu.Unlock()

	go c.watchClose(ctx, conn.NotifyClose(make(chan *amqp.Error, 1)))

	c.log.Infof(ctx, "amqp connected name=%s queue=%s prefetch=%d", c.cfg.ConnectionName, c.cfg.Queue, c.cfg.Prefetch)
	return nil
}

// watchClose — логирует закрытие соединения со стороны брокера.
func (c *Client) watchClose(ctx context.Context, notify <-chan *amqp.Error) {
	amqpErr, ok := <-notify
	if !ok || amqpErr == nil {
		return
	}
	c.log.Errorf(ctx, "amqp connection closed: code=%d reason=%s", amqpErr.Code, amqpErr.Reason)
}

func (c *Client) activeChannel() (channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ch == nil {
		return nil, ErrNotConnected
	}
	return c.ch, nil
}

// DeclareQueue — объявляет очередь, если её нет. Повторный вызов с теми же параметрами безопасен.
func (c *Client) DeclareQueue(ctx context.Context) (amqp.Queue, error) {
	ch, err := c.activeChannel()
	if err != nil {
		return amqp.Queue{}, err
	}

	q, err := ch.QueueDeclare(c.cfg.Queue, c.cfg.Durable, false, false, false, nil)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("%w: queue=%s: %w", ErrDeclare, c.cfg.Queue, err)
	}

	c.log.Infof(ctx, "amqp queue declared name=%s messages=%d consumers=%d", q.Name, q.Messages, q.Consumers)
	return q, nil
}

// Consume — объявляет очередь и обрабатывает доставки по одной, синхронно вызывая h.
// Завершается ErrDeliveriesClosed, если брокер закрыл поток, или ctx.Err() при отмене.
func (c *Client) Consume(ctx context.Context, h Handler) error {
	ch, err := c.activeChannel()
	if err != nil {
		return err
	}

	q, err := c.DeclareQueue(ctx)
	if err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, c.cfg.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue=%s: %w", q.Name, err)
	}

	c.log.Infof(ctx, "amqp consumer started queue=%s tag=%q", q.Name, c.cfg.ConsumerTag)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.log.Errorf(ctx, "amqp deliveries closed queue=%s", q.Name)
				return ErrDeliveriesClosed
			}
			metrics.AMQPDeliveriesConsumed.WithLabelValues(q.Name).Inc()
			h.HandleDelivery(ctx, d)
		}
	}
}

// Close — закрывает канал, затем соединение. Повторные вызовы ничего не делают.
func (c *Client) Close() (retErr error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		ch, conn := c.ch, c.conn
		c.mu.Unlock()

		if ch != nil {
			if err := ch.Close(); err != nil && err != amqp.ErrClosed {
				retErr = err
			}
		}
		if conn != nil {
			if err := conn.Close(); err != nil && err != amqp.ErrClosed && retErr == nil {
				retErr = err
			}
		}
	})
	return retErr
}
