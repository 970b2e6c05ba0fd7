package app

import (
	"context"
	"fmt"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	v1 "jobmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the fiber app around an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("build container: %w", err)
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var pinger handler.Pinger
	if c.DB != nil {
		pinger = c.DB
	}

	reg := &routes.Registry{
		Health: handler.NewHealthHandler(c.Config.App.AppName, pinger),
		API: v1.Handlers{
			Auth:           handler.NewAuthHandler(c.Auth),
			Profile:        handler.NewProfileHandler(c.Profiles),
			Jobs:           handler.NewJobsHandler(c.Jobs),
			Recommendation: handler.NewRecommendationHandler(c.Engine),
		},
		Auth: middleware.NewAuthMiddleware(c.JWT).Middleware(),
	}
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
