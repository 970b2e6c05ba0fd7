package recommendation

import (
	"context"
	"errors"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileReader interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type CatalogReader interface {
	FindAll(ctx context.Context) ([]job.Job, error)
}

// Engine assembles recommendations for a user by trying its matchers in
// order and returning the first successful ranking unmodified.
type Engine struct {
	profiles ProfileReader
	catalog  CatalogReader
	matchers []Matcher
	logger   *zap.Logger
}

func NewEngine(profiles ProfileReader, catalog CatalogReader, log *zap.Logger, matchers ...Matcher) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	chain := make([]Matcher, 0, len(matchers))
	for _, m := range matchers {
		if m != nil {
			chain = append(chain, m)
		}
	}
	return &Engine{profiles: profiles, catalog: catalog, matchers: chain, logger: log}
}

// Matchers reports the chain in the order it is tried.
func (e *Engine) Matchers() []string {
	names := make([]string, 0, len(e.matchers))
	for _, m := range e.matchers {
		names = append(names, m.Name())
	}
	return names
}

// GetRecommendations returns ErrProfileNotFound, ErrNoJobsAvailable or a
// *ServerError on failure.
func (e *Engine) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]MatchResult, error) {
	p, err := e.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, &ServerError{Cause: err}
	}

	jobs, err := e.catalog.FindAll(ctx)
	if err != nil {
		return nil, &ServerError{Cause: err}
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsAvailable
	}

	if len(e.matchers) == 0 {
		return nil, &ServerError{Cause: ErrNoMatchers}
	}

	var firstErr error
	for _, m := range e.matchers {
		results, err := m.Rank(ctx, p, jobs)
		if err == nil {
			if firstErr != nil {
				e.logger.Info("recommendations served by fallback",
					zap.String("user_id", userID.String()),
					zap.String("matcher", m.Name()),
					zap.Int("results", len(results)),
				)
			}
			return results, nil
		}

		if firstErr == nil {
			firstErr = err
		}
		e.logger.Warn("matcher failed, trying next",
			zap.String("user_id", userID.String()),
			zap.String("matcher", m.Name()),
			zap.String("kind", failureKind(err)),
			zap.Error(err),
		)
	}

	return nil, &ServerError{Cause: firstErr}
}

func failureKind(err error) string {
	var me *MatchError
	if errors.As(err, &me) {
		return string(me.Kind)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "unknown"
}
