package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth           *handler.AuthHandler
	Profile        *handler.ProfileHandler
	Jobs           *handler.JobsHandler
	Recommendation *handler.RecommendationHandler
}

// Register mounts the v1 API. auth guards every route that needs a caller.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r.Group("/jobs"), auth)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r.Group("/profile", auth))
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r.Group("/recommendations", auth))
	}
}
