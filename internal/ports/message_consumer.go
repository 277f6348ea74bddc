package ports

import "context"

// MessageConsumer — потребитель очереди запросов на создание пользователей.
// Run блокирует до отмены ctx или закрытия потока доставок; Close освобождает канал и соединение.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
	Queue() string
}
