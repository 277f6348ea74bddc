package rabbitmq

import "errors"

var (
	// ErrMissingURI — адрес брокера не задан (AMQP_URI).
	ErrMissingURI = errors.New("amqp uri is not configured")
	// ErrNotConnected — Consume/DeclareQueue вызваны до успешного Connect.
	ErrNotConnected = errors.New("amqp client is not connected")
	// ErrConnect — не удалось установить соединение или открыть канал.
	ErrConnect = errors.New("amqp connect failed")
	// ErrDeclare — объявление очереди отклонено брокером (например, другие параметры).
	ErrDeclare = errors.New("amqp queue declare failed")
	// ErrDeliveriesClosed — брокер закрыл поток доставок.
	ErrDeliveriesClosed = errors.New("amqp deliveries channel closed")
)
