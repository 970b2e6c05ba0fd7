package handler

import (
	"context"
	"time"

	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	db      Pinger
}

func NewHealthHandler(appName string, db Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, h.appName+" API is running", nil)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	if h.db == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database not configured", fiber.Map{"database": "down"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unavailable", fiber.Map{"database": "down"})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"database": "up"})
}
