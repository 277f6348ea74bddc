package rabbitmq

import "time"

const (
	defaultQueue          = "user.request"
	defaultDialTimeout    = 10 * time.Second
	defaultConnectionName = "user-provisioner"
)

// ClientConfig — параметры подключения и топологии очереди.
type ClientConfig struct {
	URI            string
	Queue          string
	Durable        bool
	Prefetch       int
	ConsumerTag    string
	DialTimeout    time.Duration
	ConnectionName string
}

func (c ClientConfig) withDefaults() ClientConfig {
	if c.Queue == "" {
		c.Queue = defaultQueue
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	if c.ConnectionName == "" {
		c.ConnectionName = defaultConnectionName
	}
	return c
}
