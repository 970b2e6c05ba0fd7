package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobmatch/internal/database/seeder"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/infrastructure/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound     = errors.New("job not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJobs(ctx context.Context) error
}

type Input struct {
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []string
	JobType     string
	Salary      *string
}

type Usecase interface {
	List(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, in Input) (job.Job, error)
	Update(ctx context.Context, id uuid.UUID, in Input) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context) (int, error)
}

type Service struct {
	jobs   job.Repository
	cache  Cache
	logger *zap.Logger
}

// NewService accepts a nil cache; reads then always hit the repository.
func NewService(jobs job.Repository, c Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{jobs: jobs, cache: c, logger: log.Named("jobs")}
}

func (s *Service) List(ctx context.Context) ([]job.Job, error) {
	var cached []job.Job
	if s.cacheGet(ctx, cache.JobListKey, &cached) {
		return cached, nil
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, s.internal("list jobs", err)
	}
	s.cacheSet(ctx, cache.JobListKey, jobs)
	return jobs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	key := cache.JobItemKey(id.String())
	var cached job.Job
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	j, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, s.internal("find job", err)
	}
	s.cacheSet(ctx, key, j)
	return j, nil
}

func (s *Service) Create(ctx context.Context, in Input) (job.Job, error) {
	j, err := newJob(in)
	if err != nil {
		return job.Job{}, err
	}

	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, s.internal("create job", err)
	}
	s.invalidate(ctx)
	return created, nil
}

// Update overwrites only the fields that are set in in.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (job.Job, error) {
	current, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, s.internal("find job", err)
	}

	merged, err := applyPatch(current, in)
	if err != nil {
		return job.Job{}, err
	}

	updated, err := s.jobs.Update(ctx, merged)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, s.internal("update job", err)
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return s.internal("delete job", err)
	}
	s.invalidate(ctx)
	return nil
}

// Seed replaces the catalog with the demo jobs.
func (s *Service) Seed(ctx context.Context) (int, error) {
	n, err := s.jobs.ReplaceAll(ctx, seeder.SeedJobs())
	if err != nil {
		return 0, s.internal("seed jobs", err)
	}
	s.invalidate(ctx)
	s.logger.Info("catalog seeded", zap.Int("jobs", n))
	return n, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if hit {
		s.logger.Debug("cache hit", zap.String("key", key))
	}
	return hit
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, 0); err != nil {
		s.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateJobs(ctx); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) internal(op string, err error) error {
	s.logger.Error("job operation failed", zap.String("op", op), zap.Error(err))
	return ErrInternal
}

func newJob(in Input) (job.Job, error) {
	j := job.Job{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Skills:      CleanSkills(in.Skills),
		Salary:      cleanSalary(in.Salary),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", j.Title},
		{"company", j.Company},
		{"location", j.Location},
		{"description", j.Description},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return job.Job{}, fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	t, ok := job.ParseType(strings.ToLower(strings.TrimSpace(in.JobType)))
	if !ok {
		return job.Job{}, fmt.Errorf("%w: job_type must be remote, onsite or hybrid", ErrInvalidInput)
	}
	j.JobType = t
	return j, nil
}

func applyPatch(j job.Job, in Input) (job.Job, error) {
	if v := strings.TrimSpace(in.Title); v != "" {
		j.Title = v
	}
	if v := strings.TrimSpace(in.Company); v != "" {
		j.Company = v
	}
	if v := strings.TrimSpace(in.Location); v != "" {
		j.Location = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		j.Description = v
	}
	if skills := CleanSkills(in.Skills); len(skills) > 0 {
		j.Skills = skills
	}
	if v := strings.ToLower(strings.TrimSpace(in.JobType)); v != "" {
		t, ok := job.ParseType(v)
		if !ok {
			return job.Job{}, fmt.Errorf("%w: job_type must be remote, onsite or hybrid", ErrInvalidInput)
		}
		j.JobType = t
	}
	if salary := cleanSalary(in.Salary); salary != nil {
		j.Salary = salary
	}
	return j, nil
}

// CleanSkills trims entries, drops empties and keeps the first occurrence of
// each exact skill. Case is preserved.
func CleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func cleanSalary(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

var _ Usecase = (*Service)(nil)
