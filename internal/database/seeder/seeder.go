package seeder

import (
	"context"

	"jobmatch/internal/database"
)

// Seeder loads one set of fixture rows. Run must be safe to repeat.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
