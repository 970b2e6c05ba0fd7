package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *bool:
			*p = r.values[i].(bool)
		}
	}
	return nil
}

type fakeDB struct {
	database.DB
	row     fakeRow
	execErr error
	lastSQL string
	args    []any
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.lastSQL = query
	f.args = args
	return f.row
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.lastSQL = query
	f.args = args
	return 1, f.execErr
}

func TestGetUserByEmail_NormalizesAndScans(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	db := &fakeDB{row: fakeRow{values: []any{id, "a@b.c", "hash", now, now}}}
	repo := NewUserRepository(db)

	u, err := repo.GetUserByEmail(context.Background(), "  A@B.C ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != id || u.Email != "a@b.c" || u.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if db.args[0] != "a@b.c" {
		t.Fatalf("expected normalized email arg, got %v", db.args[0])
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	for _, noRows := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		repo := NewUserRepository(&fakeDB{row: fakeRow{err: noRows}})
		if _, err := repo.GetUserByID(context.Background(), uuid.New()); !errors.Is(err, user.ErrNotFound) {
			t.Fatalf("expected user not found, got %v", err)
		}
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(&fakeDB{execErr: &pgconn.PgError{Code: "23505"}})
	err := repo.CreateUser(context.Background(), userFixture())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func userFixture() user.User {
	return user.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: "hash"}
}
