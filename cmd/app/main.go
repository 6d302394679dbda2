package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redisstore"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	uowFactory := storage(configs, logger)

	var idempotency ports.IdempotencyStore
	switch {
	case configs.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		defer func() { _ = client.Close() }()
		idempotency = redisstore.NewIdempotencyStore(client, configs.IdempotencyTTL)
	case configs.Storage == cmd.StorageMemory:
		idempotency = memory.NewIdempotencyStore(configs.IdempotencyTTL)
	}

	var publisher ports.EventPublisher
	if brokers := kafka.Brokers(configs.KafkaBrokers); len(brokers) > 0 {
		writer := kafka.NewWriter(brokers, configs.KafkaOrderEventsTopic)
		defer func() { _ = writer.Close() }()
		publisher = kafka.NewPublisher(writer)
	}

	app := cmd.NewCompositionRoot(configs, uowFactory, idempotency, publisher, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func storage(configs cmd.Config, logger *slog.Logger) ports.UnitOfWorkFactory {
	if configs.Storage == cmd.StorageMemory {
		logger.Warn("Using in-memory storage, state is lost on exit")
		return memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return postgres.NewGormUnitOfWorkFactory(gormDB)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	if err := app.CreateHTTPServer().Register(e, httpadapter.NewMetrics("orders")); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
