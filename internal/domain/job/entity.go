package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Type string

const (
	TypeRemote Type = "remote"
	TypeOnsite Type = "onsite"
	TypeHybrid Type = "hybrid"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeRemote, TypeOnsite, TypeHybrid:
		return Type(s), true
	default:
		return "", false
	}
}

type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	JobType     Type      `json:"job_type"`
	Salary      *string   `json:"salary,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository is the catalog collaborator. FindAll returns the full current
// catalog in insertion order on every call; List returns it newest first.
type Repository interface {
	FindAll(ctx context.Context) ([]Job, error)
	List(ctx context.Context) ([]Job, error)
	FindByID(ctx context.Context, id uuid.UUID) (Job, error)
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, jobs []Job) (int, error)
}
