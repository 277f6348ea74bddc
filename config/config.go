package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"user-provisioner" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// AMQP — подключение к брокеру и топология очереди.
// URI обязателен и не имеет значения по умолчанию.
type AMQP struct {
	URI            string        `envconfig:"URI" required:"true"`
	Queue          string        `default:"user.request" envconfig:"QUEUE"`
	Durable        bool          `default:"false" envconfig:"DURABLE"`
	Prefetch       int           `default:"1" envconfig:"PREFETCH"`
	ConsumerTag    string        `default:"" envconfig:"CONSUMER_TAG"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	DialTimeout    time.Duration `default:"10s" envconfig:"DIAL_TIMEOUT"`
}

// Mongo — документное хранилище пользователей.
type Mongo struct {
	Conn           string        `envconfig:"CONN" required:"true"`
	Database       string        `default:"warpy" envconfig:"DATABASE"`
	Collection     string        `default:"users" envconfig:"COLLECTION"`
	ConnectTimeout time.Duration `default:"10s" envconfig:"CONNECT_TIMEOUT"`
	OpTimeout      time.Duration `default:"5s" envconfig:"OP_TIMEOUT"`
}

type Handler struct {
	Mode string `default:"persist" envconfig:"MODE"` // persist|dry-run
}

type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
	WarmUp   int           `default:"100" envconfig:"WARMUP"`
}

type Password struct {
	BcryptCost int `default:"10" envconfig:"BCRYPT_COST"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP     HTTP
	Tracing  Tracing
	AMQP     AMQP    `envconfig:"AMQP"`
	Mongo    Mongo   `envconfig:"MONGODB"`
	Handler  Handler `envconfig:"HANDLER"`
	Cache    Cache
	Password Password
	Logger   Logger
}

// Load — читает конфигурацию из окружения без префикса (AMQP_URI, MONGODB_CONN, ...).
func Load() (Config, error) {
	return LoadWithPrefix("")
}

// LoadWithPrefix — то же, что Load, но все ключи ищутся с префиксом (<prefix>_AMQP_URI).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
