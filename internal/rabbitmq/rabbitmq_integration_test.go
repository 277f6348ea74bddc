//go:build integration

package rabbitmq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/warpy_users/internal/rabbitmq"
	"github.com/Gunvolt24/warpy_users/internal/testutil"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func startRabbit(t *testing.T) *testutil.RabbitEnv {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRabbitTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	return env
}

// Очередь объявляется дважды без ошибок
func TestDeclareQueue_Twice_TC(t *testing.T) {
	env := startRabbit(t)
	ctx := context.Background()

	c := rabbitmq.NewClient(rabbitmq.ClientConfig{URI: env.URI, Prefetch: 1}, nopLogger{})
	require.NoError(t, c.Connect(ctx))
	defer c.Close()

	_, err := c.DeclareQueue(ctx)
	require.NoError(t, err)
	q, err := c.DeclareQueue(ctx)
	require.NoError(t, err)
	require.Equal(t, "user.request", q.Name)
}

// Объявление существующей очереди с другими параметрами — ErrDeclare
func TestDeclareQueue_Mismatch_TC(t *testing.T) {
	env := startRabbit(t)
	ctx := context.Background()

	durable := rabbitmq.NewClient(rabbitmq.ClientConfig{URI: env.URI, Queue: "mismatch", Durable: true}, nopLogger{})
	require.NoError(t, durable.Connect(ctx))
	defer durable.Close()
	_, err := durable.DeclareQueue(ctx)
	require.NoError(t, err)

	transient := rabbitmq.NewClient(rabbitmq.ClientConfig{URI: env.URI, Queue: "mismatch"}, nopLogger{})
	require.NoError(t, transient.Connect(ctx))
	defer transient.Close()
	_, err = transient.DeclareQueue(ctx)
	require.True(t, errors.Is(err, rabbitmq.ErrDeclare), "got %v", err)
}

// Опубликованные сообщения доходят до обработчика в порядке публикации
func TestConsume_ReceivesPublished_TC(t *testing.T) {
	env := startRabbit(t)

	c := rabbitmq.NewClient(rabbitmq.ClientConfig{URI: env.URI, Prefetch: 1}, nopLogger{})
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()
	_, err := c.DeclareQueue(context.Background())
	require.NoError(t, err)

	bodies := []string{`{"n":1}`, `{"n":2}`, `{"n":3}`}
	for _, b := range bodies {
		require.NoError(t, testutil.Publish(context.Background(), env.URI, "user.request", []byte(b)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var got []string
	h := rabbitmq.HandlerFunc(func(_ context.Context, d amqp.Delivery) {
		got = append(got, string(d.Body))
		_ = d.Ack(false)
		if len(got) == len(bodies) {
			cancel()
		}
	})

	err = c.Consume(ctx, h)
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
	require.Equal(t, bodies, got)

	depth, err := testutil.QueueDepth(env.URI, "user.request")
	require.NoError(t, err)
	require.Zero(t, depth)
}
