package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, company, location, description, skills, job_type, salary, created_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// FindAll returns the catalog in insertion order.
func (r *PostgresJobRepository) FindAll(ctx context.Context) ([]job.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY seq ASC`)
}

// List returns the catalog newest first.
func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, seq DESC`)
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, company, location, description, skills, job_type, salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Company, j.Location, j.Description, skillsOrEmpty(j.Skills), string(j.JobType), j.Salary,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, company = $3, location = $4, description = $5, skills = $6, job_type = $7, salary = $8
		 WHERE id = $1
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Company, j.Location, j.Description, skillsOrEmpty(j.Skills), string(j.JobType), j.Salary,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the whole catalog in one transaction and returns the
// number of inserted rows.
func (r *PostgresJobRepository) ReplaceAll(ctx context.Context, jobs []job.Job) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return 0, fmt.Errorf("clear jobs: %w", err)
	}

	inserted := 0
	for _, j := range jobs {
		id := j.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		n, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, company, location, description, skills, job_type, salary)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id, j.Title, j.Company, j.Location, j.Description, skillsOrEmpty(j.Skills), string(j.JobType), j.Salary,
		)
		if err != nil {
			return 0, fmt.Errorf("insert job %q: %w", j.Title, err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *PostgresJobRepository) query(ctx context.Context, q string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j       job.Job
		jobType string
	)
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Skills, &jobType, &j.Salary, &j.CreatedAt); err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	if j.Skills == nil {
		j.Skills = []string{}
	}
	return j, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

var _ job.Repository = (*PostgresJobRepository)(nil)
