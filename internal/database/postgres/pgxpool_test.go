package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jobmatch/internal/config"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "p w",
		DBName:     "jobmatch",
		DBSSLMode:  "disable",
	})
	want := "host=db port=5432 user=app password=p w dbname=jobmatch sslmode=disable"
	if got != want {
		t.Fatalf("unexpected dsn:\n got %q\nwant %q", got, want)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(dup) {
		t.Fatalf("expected unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error is not a unique violation")
	}
}

func TestNilPool(t *testing.T) {
	var p *Pool
	if err := p.Ping(context.Background()); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB, got %v", err)
	}
	if err := p.QueryRow(context.Background(), "SELECT 1").Scan(); !errors.Is(err, errNilDB) {
		t.Fatalf("expected errNilDB, got %v", err)
	}
}
