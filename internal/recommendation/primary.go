package recommendation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"
	"jobmatch/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultGenerateTimeout = 10 * time.Second
	defaultMaxLogLength    = 200
)

type PrimaryConfig struct {
	// Name identifies the provider in logs and errors, e.g. "cohere".
	Name string
	// Timeout bounds a single generator call. Zero means DefaultGenerateTimeout.
	Timeout      time.Duration
	MaxLogLength int
}

// PrimaryMatcher delegates ranking to a Generator and validates the answer
// against the catalog it was given. Every failure is a *MatchError.
type PrimaryMatcher struct {
	generator Generator
	name      string
	timeout   time.Duration
	maxLogLen int
	logger    *zap.Logger
}

func NewPrimaryMatcher(generator Generator, cfg PrimaryConfig, log *zap.Logger) *PrimaryMatcher {
	if log == nil {
		log = zap.NewNop()
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "primary"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLength
	}
	return &PrimaryMatcher{
		generator: generator,
		name:      name,
		timeout:   timeout,
		maxLogLen: maxLogLen,
		logger:    log,
	}
}

func (m *PrimaryMatcher) Name() string { return m.name }

func (m *PrimaryMatcher) Rank(ctx context.Context, p profile.Profile, jobs []job.Job) ([]MatchResult, error) {
	if m.generator == nil {
		return nil, m.fail(KindExternalService, errors.New("generator not configured"))
	}

	prompt, err := BuildPrompt(p, jobs)
	if err != nil {
		return nil, m.fail(KindExternalService, err)
	}

	m.logger.Debug("generate request",
		zap.String("matcher", m.name),
		zap.Int("jobs", len(jobs)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	raw, err := m.generator.Generate(callCtx, prompt)
	if err != nil {
		return nil, m.fail(KindExternalService, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, m.fail(KindExternalService, ErrEmptyResponse)
	}

	m.logger.Debug("generate response",
		zap.String("matcher", m.name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, m.maxLogLen)),
	)

	ranking := ParseRanking(raw)
	if ranking.Malformed {
		m.logger.Warn("malformed ranking",
			zap.String("matcher", m.name),
			zap.String("raw_preview", logger.TruncateForLog(ranking.Raw, m.maxLogLen)),
			zap.Error(ranking.Err),
		)
		return nil, m.fail(KindResponseParse, ranking.Err)
	}

	return m.resolve(ranking.Entries, jobs)
}

// resolve maps every entry onto the catalog. A single unknown id rejects the
// whole ranking.
func (m *PrimaryMatcher) resolve(entries []RankedEntry, jobs []job.Job) ([]MatchResult, error) {
	byID := make(map[string]job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID.String()] = j
	}

	out := make([]MatchResult, 0, len(entries))
	for _, e := range entries {
		j, ok := byID[strings.ToLower(e.ID)]
		if !ok {
			return nil, m.fail(KindReference, fmt.Errorf("%w: %s", ErrUnknownJob, e.ID))
		}
		out = append(out, MatchResult{
			JobID:        j.ID,
			Title:        j.Title,
			Company:      j.Company,
			MatchScore:   e.MatchScore,
			MatchReasons: e.MatchReasons,
			JobDetails:   j,
		})
	}

	if len(out) > MaxResults {
		out = out[:MaxResults]
	}
	return out, nil
}

func (m *PrimaryMatcher) fail(kind Kind, err error) error {
	return &MatchError{Kind: kind, Matcher: m.name, Err: err}
}
