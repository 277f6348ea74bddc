package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/warpy_users/config"
	cachemem "github.com/Gunvolt24/warpy_users/internal/cache/memory"
	"github.com/Gunvolt24/warpy_users/internal/delivery"
	"github.com/Gunvolt24/warpy_users/internal/ports"
	"github.com/Gunvolt24/warpy_users/internal/rabbitmq"
	"github.com/Gunvolt24/warpy_users/internal/repo/mongostore"
	rest "github.com/Gunvolt24/warpy_users/internal/transport/http"
	"github.com/Gunvolt24/warpy_users/internal/usecase"
	"github.com/Gunvolt24/warpy_users/pkg/logger"
	"github.com/Gunvolt24/warpy_users/pkg/metrics"
	"github.com/Gunvolt24/warpy_users/pkg/password"
	"github.com/Gunvolt24/warpy_users/pkg/telemetry"
	"github.com/Gunvolt24/warpy_users/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер чтения пользователей
	Consumer        ports.MessageConsumer // потребитель очереди user.request
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Ошибки инициализации хранилища и брокера фатальны: приложение не стартует.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Стек освобождения ресурсов: выполняется в обратном порядке.
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}
	fail := func(err error) (*App, Cleanup, error) {
		cleanup()
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL; при выключенной конфигурации ставятся только пропагаторы.
	shutdownTrace, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if tErr != nil {
		logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
	} else {
		if cfg.Tracing.Enabled {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		}
		closers = append(closers, func() {
			if terr := shutdownTrace(context.Background()); terr != nil {
				logg.Warnf(ctx, "shutdown tracing: %v", terr)
			}
		})
	}

	// Хранилище пользователей (MongoDB).
	mongoClient, err := mongostore.NewClient(ctx, mongostore.ClientConfig{
		URI:            cfg.Mongo.Conn,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		AppName:        cfg.Tracing.ServiceName,
	})
	if err != nil {
		logg.Errorf(ctx, "mongo init failed: %v", err)
		return fail(err)
	}
	closers = append(closers, func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if derr := mongoClient.Disconnect(dctx); derr != nil {
			logg.Warnf(ctx, "mongo disconnect: %v", derr)
		}
	})

	userRepo := mongostore.NewUserRepository(
		mongostore.Collection(mongoClient, cfg.Mongo.Database, cfg.Mongo.Collection),
		cfg.Mongo.OpTimeout,
	)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Errorf(ctx, "mongo indexes failed: %v", err)
		return fail(err)
	}

	// Сборка зависимостей доменного слоя.
	userCache := cachemem.NewUserLRU(cfg.Cache.Capacity, cfg.Cache.TTL)
	userValidator := validate.NewUserValidator()
	hasher := password.NewBcryptHasher(cfg.Password.BcryptCost)
	userService := usecase.NewUserService(userRepo, userCache, logg, userValidator, hasher)

	// Прогрев кэша
	if n := cfg.Cache.WarmUp; n > 0 {
		if err := userService.WarmUpCache(ctx, n); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	// Обработчик доставок по HANDLER_MODE.
	handler, err := delivery.New(cfg.Handler.Mode, userService, userValidator, logg, delivery.Options{
		Queue:          cfg.AMQP.Queue,
		ProcessTimeout: cfg.AMQP.ProcessTimeout,
	})
	if err != nil {
		return fail(err)
	}

	// Брокер: Connect до старта HTTP, ошибка фатальна.
	broker := rabbitmq.NewClient(rabbitmq.ClientConfig{
		URI:            cfg.AMQP.URI,
		Queue:          cfg.AMQP.Queue,
		Durable:        cfg.AMQP.Durable,
		Prefetch:       cfg.AMQP.Prefetch,
		ConsumerTag:    cfg.AMQP.ConsumerTag,
		DialTimeout:    cfg.AMQP.DialTimeout,
		ConnectionName: cfg.Tracing.ServiceName,
	}, logg)
	if err := broker.Connect(ctx); err != nil {
		logg.Errorf(ctx, "amqp connect failed: %v", err)
		return fail(fmt.Errorf("broker: %w", err))
	}
	consumer := rabbitmq.NewConsumer(broker, handler)
	closers = append(closers, func() {
		if cerr := consumer.Close(); cerr != nil {
			logg.Warnf(ctx, "amqp consumer close error: %v", cerr)
		}
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(userService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	logg.Infof(ctx, "bootstrap done mode=%s queue=%s db=%s/%s",
		cfg.Handler.Mode, cfg.AMQP.Queue, cfg.Mongo.Database, cfg.Mongo.Collection)

	return &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Consumer:        consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
// Возвращает терминальную ошибку фонового компонента (например, закрытие потока доставок),
// чтобы процесс завершился с ненулевым кодом; при отмене контекста — nil.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	consumerDone := make(chan struct{})

	// Запуск консьюмера. Обработка доставки синхронна: Run возвращается после settle текущей.
	go func() {
		defer close(consumerDone)
		a.Logger.Infof(ctx, "amqp consumer starting (queue=%s)", a.Consumer.Queue())
		if err := a.Consumer.Run(ctx); err != nil {
			errCh <- fmt.Errorf("consumer: %w", err)
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Канал закрывается только после подтверждения доставки, начатой до остановки.
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		a.Logger.Warnf(ctx, "amqp consumer did not stop within %s, closing channel", gt)
	}
	if err := a.Consumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "amqp consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
