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
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config := cmd.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := postgres.Migrate(config.MigrationURL()); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	gormDB, err := postgres.Open(config.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient := connectRedis(config, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var publisher ports.OrderEventPublisher
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		producer, producerErr := kafka.NewSyncProducer(brokers)
		if producerErr != nil {
			log.Fatalf("Failed to connect to Kafka: %v", producerErr)
		}
		orderPublisher, publisherErr := kafka.NewOrderEventPublisher(producer, config.KafkaOrderChangedTopic)
		if publisherErr != nil {
			log.Fatalf("Failed to create order event publisher: %v", publisherErr)
		}
		defer orderPublisher.Close()
		publisher = orderPublisher
	} else {
		logger.Warn("KAFKA_HOST is empty, order events are not published")
	}

	var cacheClient redis.Cmdable
	if redisClient != nil {
		cacheClient = redisClient
	}
	app := cmd.NewCompositionRoot(config, gormDB, cacheClient, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, app, config.HTTPPort)
}

// connectRedis returns nil when Redis is not configured or unreachable; listings are
// then served from the database only.
func connectRedis(config cmd.Config, logger *slog.Logger) *redis.Client {
	if config.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is empty, restaurant cache is disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis is unreachable, restaurant cache is disabled", "addr", config.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), app.Metrics())
	if err != nil {
		log.Fatalf("Failed to build HTTP router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
