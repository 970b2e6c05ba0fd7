package repository

import (
	"context"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
)

const profileColumns = `id, user_id, name, location, years_of_experience, skills, preferred_job_type, created_at, updated_at`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

// Upsert keeps one profile per user; the id and created_at of an existing
// profile survive the update.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, user_id, name, location, years_of_experience, skills, preferred_job_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			years_of_experience = EXCLUDED.years_of_experience,
			skills = EXCLUDED.skills,
			preferred_job_type = EXCLUDED.preferred_job_type,
			updated_at = now()
		 RETURNING `+profileColumns,
		p.ID, p.UserID, p.Name, p.Location, p.YearsOfExperience, skillsOrEmpty(p.Skills), string(p.PreferredJobType),
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var (
		p    profile.Profile
		pref string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Location, &p.YearsOfExperience, &p.Skills, &pref, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.PreferredJobType = profile.PreferredJobType(pref)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

var _ profile.Repository = (*PostgresProfileRepository)(nil)
