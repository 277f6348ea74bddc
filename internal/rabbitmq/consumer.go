package rabbitmq

import (
	"context"

	"github.com/Gunvolt24/warpy_users/internal/ports"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// Consumer — связка клиента и обработчика для запуска из app.
type Consumer struct {
	client  *Client
	handler Handler
}

func NewConsumer(client *Client, handler Handler) *Consumer {
	return &Consumer{client: client, handler: handler}
}

// Run — блокирует до закрытия потока доставок или отмены контекста.
func (c *Consumer) Run(ctx context.Context) error {
	return c.client.Consume(ctx, c.handler)
}

func (c *Consumer) Queue() string { return c.client.Queue() }

func (c *Consumer) Close() error {
	return c.client.Close()
}
