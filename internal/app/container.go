package app

import (
	"context"
	"errors"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/infrastructure/persistence/postgres"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/recommendation"
	"jobmatch/internal/repository"
	ucauth "jobmatch/internal/usecase/auth"
	ucjob "jobmatch/internal/usecase/job"
	ucprofile "jobmatch/internal/usecase/profile"

	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	JWT    jwt.Service

	Auth     ucauth.Usecase
	Profiles ucprofile.Usecase
	Jobs     ucjob.Usecase
	Engine   *recommendation.Engine
}

// NewContainer connects to Postgres and Redis and wires every usecase.
func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(cctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cctx, cfg.Redis, log)
	tokens := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	return Wire(ctx, cfg, log, db, redis, tokens), nil
}

// Wire builds the usecases on top of already open infrastructure. A nil
// cache disables caching.
func Wire(ctx context.Context, cfg config.Config, log *zap.Logger, db database.DB, redis *cache.Redis, tokens jwt.Service) *Container {
	if log == nil {
		log = zap.NewNop()
	}

	jobs := repository.NewPostgresJobRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	users := postgres.NewUserRepository(db)

	var jobCache ucjob.Cache
	if redis.Enabled() {
		jobCache = redis
	}

	engine := recommendation.NewEngine(profiles, jobs, log.Named("recommendation"), BuildMatchers(ctx, cfg, log)...)
	log.Info("recommendation chain ready", zap.Strings("matchers", engine.Matchers()))

	return &Container{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Cache:    redis,
		JWT:      tokens,
		Auth:     ucauth.NewService(users, tokens, log),
		Profiles: ucprofile.NewService(profiles, log),
		Jobs:     ucjob.NewService(jobs, jobCache, log),
		Engine:   engine,
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
