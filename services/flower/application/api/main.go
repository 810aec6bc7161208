package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/petalstore/pkg/app"
	"github.com/ghuser/petalstore/services/flower/application/handlers"
	appsvcs "github.com/ghuser/petalstore/services/flower/application/services"
)

// FlowerRoutes registers flower endpoints on the provided chi router.
func FlowerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/flowers", func(r chi.Router) {
			r.Get("/", handlers.NewListFlowersHandler(svcs).Execute)
			r.Post("/", handlers.NewCreateFlowerHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetFlowerHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewUpdateFlowerHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteFlowerHandler(svcs).Execute)
		})
	})
}
