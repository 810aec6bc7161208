package services

import (
	"github.com/ghuser/petalstore/pkg/app"
	"github.com/ghuser/petalstore/pkg/cache"
	"github.com/ghuser/petalstore/services/flower/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Flower *FlowerService
}

// New wires all flower application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewFlowerRepository(a.Db, a.EventBus)
	flowerCache := cache.NewFlowerCache(a.Redis)
	return &Services{
		Flower: NewFlowerService(repo, flowerCache),
	}
}
