package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/petalstore/pkg/app"
	"github.com/ghuser/petalstore/pkg/cache"
	"github.com/ghuser/petalstore/pkg/config"
	"github.com/ghuser/petalstore/pkg/database"
	"github.com/ghuser/petalstore/pkg/events"
	"github.com/ghuser/petalstore/pkg/logger"
	"github.com/ghuser/petalstore/pkg/telemetry"
	flowerEvents "github.com/ghuser/petalstore/services/flower/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	flowerCache := cache.NewFlowerCache(a.Redis)

	subscriptions := map[string]func(context.Context, *message.Message) error{
		flowerEvents.TopicFlowerCreated: handleFlowerCreated(a, flowerCache),
		flowerEvents.TopicFlowerDeleted: handleFlowerDeleted(a, flowerCache),
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleFlowerCreated returns a handler for flower.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent Get calls are served from cache.
func handleFlowerCreated(a *app.Application, flowerCache *cache.FlowerCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt flowerEvents.FlowerCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := flowerCache.Set(ctx, &cache.CachedFlower{
			ID:          evt.FlowerID,
			Name:        evt.Name,
			Color:       evt.Color,
			Description: evt.Description,
			Price:       evt.Price,
			Stock:       evt.Stock,
			CreatedAt:   evt.OccurredAt,
			UpdatedAt:   evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for flower.created",
				"flower_id", evt.FlowerID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "flower_id", evt.FlowerID)
		}

		return nil
	}
}

// handleFlowerDeleted returns a handler for flower.deleted events.
// Evicts the cached read model so stale entries never outlive the row.
func handleFlowerDeleted(a *app.Application, flowerCache *cache.FlowerCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt flowerEvents.FlowerDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := flowerCache.Delete(ctx, evt.FlowerID); err != nil {
			a.Logger.WarnContext(ctx, "cache evict failed for flower.deleted",
				"flower_id", evt.FlowerID, "error", err)
			return err
		}

		a.Logger.InfoContext(ctx, "cache evicted", "flower_id", evt.FlowerID)
		return nil
	}
}
