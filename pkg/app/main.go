package app

import (
	"github.com/ghuser/petalstore/pkg/cache"
	"github.com/ghuser/petalstore/pkg/database"
	"github.com/ghuser/petalstore/pkg/events"
	"github.com/ghuser/petalstore/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// It is built once at process start and passed to every service's route
// registration; the service layer must not construct infrastructure itself.
//
// Logging: app.Logger is backed by a trace-aware handler — prefer the
// context-aware methods so trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "updating flower", "flower_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
