package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return ErrNilDB
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeder applied", zap.String("seeder", s.Name()))
	}
	return nil
}
