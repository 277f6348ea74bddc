package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientConfig — параметры подключения к MongoDB.
type ClientConfig struct {
	URI            string
	ConnectTimeout time.Duration
	AppName        string
}

// NewClient — создаёт клиента MongoDB по строке подключения и проверяет доступность (Ping) для fail-fast.
// Любая ошибка возвращается как *InitError (errors.Is(err, ErrInit)).
func NewClient(ctx context.Context, cfg ClientConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, &InitError{Op: "config", Err: errors.New("connection string is empty")}
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if err := opts.Validate(); err != nil {
		return nil, &InitError{Op: "parse uri", Err: err}
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &InitError{Op: "connect", Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, &InitError{Op: "ping", Err: err}
	}

	return client, nil
}

// Collection — именованная коллекция именованной БД.
func Collection(client *mongo.Client, database, collection string) *mongo.Collection {
	return client.Database(database).Collection(collection)
}
