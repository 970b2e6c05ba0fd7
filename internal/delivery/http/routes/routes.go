package routes

import (
	"jobmatch/internal/delivery/http/handler"
	v1 "jobmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Registry owns every HTTP handler and mounts them on the app.
type Registry struct {
	Health *handler.HealthHandler
	API    v1.Handlers
	Auth   fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.API, r.Auth)
}
