package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type PreferredJobType string

const (
	PreferRemote PreferredJobType = "remote"
	PreferOnsite PreferredJobType = "onsite"
	PreferAny    PreferredJobType = "any"
)

func ParsePreferredJobType(s string) (PreferredJobType, bool) {
	switch PreferredJobType(s) {
	case PreferRemote, PreferOnsite, PreferAny:
		return PreferredJobType(s), true
	default:
		return "", false
	}
}

type Profile struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	Name              string           `json:"name"`
	Location          string           `json:"location"`
	YearsOfExperience int              `json:"years_of_experience"`
	Skills            []string         `json:"skills"`
	PreferredJobType  PreferredJobType `json:"preferred_job_type"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type Repository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, p Profile) (Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
