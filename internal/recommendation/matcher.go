// Package recommendation ranks the job catalog for a single candidate profile.
//
// Ranking strategies implement Matcher and are tried in order by Engine until
// one succeeds. The usual chain is one or more PrimaryMatcher values backed by
// an external text generator, followed by DeterministicMatcher as the
// unconditional safety net.
package recommendation

import (
	"context"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
)

// MaxResults is the length of the shortlist every matcher returns at most.
const MaxResults = 3

type MatchResult struct {
	JobID         uuid.UUID
	Title         string
	Company       string
	MatchScore    int
	MatchReasons  []string
	JobDetails    job.Job
	UsingFallback bool
}

type Matcher interface {
	Name() string
	Rank(ctx context.Context, p profile.Profile, jobs []job.Job) ([]MatchResult, error)
}

// Generator turns a prompt into free-form text. Implementations live in
// internal/infrastructure/llm.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
