package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/logger"
	"jobmatch/migrations"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	appName         = "jobmatch"
	shutdownTimeout = 10 * time.Second
	dbTimeout       = 30 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	envFile string
	json    bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "jobmatch serves job recommendations for candidate profiles",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().BoolVarP(&flags.json, "json", "j", false, "json format for logging")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "verbose/debug output")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), flags)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending SQL migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(cmd.Context(), flags)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Replace the job catalog with the demo jobs",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return seed(cmd.Context(), flags)
			},
		},
	)

	return root
}

// setup loads the dotenv file and configuration and builds the logger.
func setup(flags *globalFlags) (config.Config, *zap.Logger, error) {
	if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, nil, fmt.Errorf("load %s: %w", flags.envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log.JSON || flags.json, cfg.Log.Debug || flags.debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, zlog.With(zap.String("env", cfg.App.Environment)), nil
}

func serve(ctx context.Context, flags *globalFlags) error {
	cfg, zlog, err := setup(flags)
	if err != nil {
		log.Printf("startup: %v", err)
		return err
	}
	defer func() { _ = zlog.Sync() }()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zlog.Error("invalid HTTP port", zap.Error(err))
		return err
	}

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, zlog)
	if err != nil {
		zlog.Error("failed to bootstrap app", zap.Error(err))
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			zlog.Warn("cleanup error", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("http server listening", zap.String("addr", addr))
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			zlog.Error("server error", zap.Error(err))
			return err
		}
	case sig := <-sigCh:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(sctx); err != nil {
			zlog.Warn("shutdown error", zap.Error(err))
		}
	}
	return nil
}

func migrate(ctx context.Context, flags *globalFlags) error {
	cfg, zlog, err := setup(flags)
	if err != nil {
		log.Printf("startup: %v", err)
		return err
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, zlog)
	if err != nil {
		zlog.Error("connect database", zap.Error(err))
		return err
	}
	defer db.Close()

	r := migration.Runner{FS: migrations.FS, Logger: zlog}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		zlog.Error("migrate", zap.Error(err))
		return err
	}
	return nil
}

func seed(ctx context.Context, flags *globalFlags) error {
	cfg, zlog, err := setup(flags)
	if err != nil {
		log.Printf("startup: %v", err)
		return err
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, zlog)
	if err != nil {
		zlog.Error("connect database", zap.Error(err))
		return err
	}
	defer db.Close()

	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: zlog}
	if err := r.Run(ctx, db); err != nil {
		zlog.Error("seed", zap.Error(err))
		return err
	}
	return nil
}
