package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	ports "pinstack-blog-service/internal/domain/ports/output"
	"pinstack-blog-service/internal/domain/ports/output/events"
	"pinstack-blog-service/internal/domain/ports/output/storage"
	"pinstack-blog-service/internal/infrastructure/config"
	mqtt_events "pinstack-blog-service/internal/infrastructure/outbound/events/mqtt"
	noop_events "pinstack-blog-service/internal/infrastructure/outbound/events/noop"
	file_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/file"
	memory_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/memory"
	postgres_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/postgres"
	redis_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/redis"
)

const (
	driverFile     = "file"
	driverRedis    = "redis"
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

// newPostStorage builds the backend selected by storage.driver. The returned
// cleanup releases its connections and is never nil.
func newPostStorage(ctx context.Context, cfg *config.Config, log ports.Logger, metrics ports.MetricsProvider) (storage.PostStorage, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case driverFile:
		log.Info("Using file storage", slog.String("path", cfg.Storage.Path))
		return file_storage.NewPostStorage(cfg.Storage.Path, log), noop, nil

	case driverMemory:
		log.Warn("Using in-memory storage, posts are lost on exit")
		return memory_storage.NewPostStorage(log), noop, nil

	case driverRedis:
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		client, err := redis_storage.NewClient(cfg.Redis, log)
		if err != nil {
			return nil, noop, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}
		return redis_storage.NewPostStorage(client, cfg.Redis.Key, log), cleanup, nil

	case driverPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres_storage.Migrate(cfg.Database.DSN(), postgres_storage.MigrateUp, log); err != nil {
				return nil, noop, err
			}
		}

		poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("failed to parse postgres pool config: %w", err)
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Info("Connected to postgres",
			slog.String("host", cfg.Database.Host),
			slog.String("db", cfg.Database.DbName),
			slog.String("document", cfg.Database.Document))
		return postgres_storage.NewPostStorage(pool, cfg.Database.Document, log, metrics), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newEventPublisher connects to the MQTT broker when one is configured and
// falls back to dropping events otherwise.
func newEventPublisher(cfg config.MQTT, log ports.Logger) (events.PostEventPublisher, func(), error) {
	if cfg.Broker == "" {
		log.Debug("No MQTT broker configured, post events disabled")
		return noop_events.Publisher{}, func() {}, nil
	}

	publisher, err := mqtt_events.NewPublisher(cfg, log)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close MQTT publisher", slog.String("error", err.Error()))
		}
	}
	return publisher, cleanup, nil
}
