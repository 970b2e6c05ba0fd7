package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobmatch/internal/database"
)

var (
	ErrNilDB          = errors.New("nil db")
	ErrSchemaMismatch = errors.New("schema mismatch")

	errEmptyIdentifier = errors.New("empty table or column name")
)

// EnsureTableColumns checks that every column exists on public.<table> and
// reports all missing ones in a single ErrSchemaMismatch.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return ErrNilDB
	}
	if strings.TrimSpace(table) == "" {
		return errEmptyIdentifier
	}
	for _, col := range columns {
		if strings.TrimSpace(col) == "" {
			return errEmptyIdentifier
		}
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	existing := make(map[string]struct{}, len(columns))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scan column of %s: %w", table, err)
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read columns of %s: %w", table, err)
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
