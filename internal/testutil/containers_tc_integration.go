//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----------------------------------------------------------------------------
// Логи жизненного цикла контейнеров
// ----------------------------------------------------------------------------

func shortID(c tc.Container) string {
	id := c.GetContainerID()
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func logHooks(l *log.Logger) tc.ContainerLifecycleHooks {
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("🐳 creating container image=%s", req.Image)
				return nil
			},
		},
		PostStarts: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("✅ started id=%s", shortID(c))
				return nil
			},
		},
		PostReadies: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("🔔 ready id=%s", shortID(c))
				return nil
			},
		},
		PreTerminates: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("🛑 terminating id=%s", shortID(c))
				return nil
			},
		},
	}
}

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// ----------------------------------------------------------------------------
// MongoDB
// ----------------------------------------------------------------------------

type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	URI       string
}

func StartMongoTC(ctx context.Context) (*MongoContainer, func(context.Context) error, error) {
	mc, err := mongodb.Run(ctx, "mongo:7", tc.WithLifecycleHooks(logHooks(tcLogger)))
	if err != nil {
		return nil, nil, fmt.Errorf("run mongodb: %w", err)
	}

	uri, err := mc.ConnectionString(ctx)
	if err != nil {
		_ = tc.TerminateContainer(mc)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = tc.TerminateContainer(mc)
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	stop := func(c context.Context) error {
		_ = client.Disconnect(c)
		return tc.TerminateContainer(mc)
	}
	return &MongoContainer{Container: mc, Client: client, URI: uri}, stop, nil
}

// ----------------------------------------------------------------------------
// RabbitMQ
// ----------------------------------------------------------------------------

type RabbitEnv struct {
	Container *rabbitmq.RabbitMQContainer
	URI       string
}

func StartRabbitTC(ctx context.Context) (*RabbitEnv, func(context.Context) error, error) {
	rc, err := rabbitmq.Run(ctx, "rabbitmq:3.13-management-alpine", tc.WithLifecycleHooks(logHooks(tcLogger)))
	if err != nil {
		return nil, nil, fmt.Errorf("run rabbitmq: %w", err)
	}

	uri, err := rc.AmqpURL(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rc)
		return nil, nil, fmt.Errorf("amqp url: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rc) }
	return &RabbitEnv{Container: rc, URI: uri}, stop, nil
}

// Publish — публикует тело в очередь через default exchange (routing key = имя очереди).
func Publish(ctx context.Context, uri, queue string, body []byte) error {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel: %w", err)
	}
	defer ch.Close()

	return ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   "itest-" + UniqSuffix(),
		Body:        body,
	})
}

// QueueDepth — число сообщений в очереди (пассивное объявление, очередь должна существовать).
func QueueDepth(uri, queue string) (int, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return 0, err
	}
	defer ch.Close()

	q, err := ch.QueueDeclarePassive(queue, false, false, false, false, nil)
	if err != nil {
		return 0, err
	}
	return q.Messages, nil
}
