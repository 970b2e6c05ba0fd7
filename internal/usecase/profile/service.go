package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound     = errors.New("profile not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type UpsertInput struct {
	Name              string
	Location          string
	YearsOfExperience int
	Skills            []string
	PreferredJobType  string
}

type Usecase interface {
	Me(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertInput) (profile.Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	profiles profile.Repository
	logger   *zap.Logger
}

func NewService(profiles profile.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{profiles: profiles, logger: log.Named("profile")}
}

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrNotFound
		}
		return profile.Profile{}, s.internal("find profile", userID, err)
	}
	return p, nil
}

// Upsert creates the caller's profile or replaces every field of the
// existing one.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, in UpsertInput) (profile.Profile, error) {
	p, err := buildProfile(userID, in)
	if err != nil {
		return profile.Profile{}, err
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return profile.Profile{}, s.internal("upsert profile", userID, err)
	}
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ErrNotFound
		}
		return s.internal("delete profile", userID, err)
	}
	return nil
}

func (s *Service) internal(op string, userID uuid.UUID, err error) error {
	s.logger.Error("profile operation failed", zap.String("op", op), zap.String("user_id", userID.String()), zap.Error(err))
	return ErrInternal
}

func buildProfile(userID uuid.UUID, in UpsertInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, fmt.Errorf("%w: missing user", ErrInvalidInput)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return profile.Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return profile.Profile{}, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if in.YearsOfExperience < 0 {
		return profile.Profile{}, fmt.Errorf("%w: years_of_experience must not be negative", ErrInvalidInput)
	}

	skills := NormalizeSkills(in.Skills)
	if len(skills) == 0 {
		return profile.Profile{}, fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}

	pref := profile.PreferAny
	if raw := strings.ToLower(strings.TrimSpace(in.PreferredJobType)); raw != "" {
		parsed, ok := profile.ParsePreferredJobType(raw)
		if !ok {
			return profile.Profile{}, fmt.Errorf("%w: preferred_job_type must be remote, onsite or any", ErrInvalidInput)
		}
		pref = parsed
	}

	return profile.Profile{
		UserID:            userID,
		Name:              name,
		Location:          location,
		YearsOfExperience: in.YearsOfExperience,
		Skills:            skills,
		PreferredJobType:  pref,
	}, nil
}

// NormalizeSkills trims entries, drops empties and removes exact duplicates
// keeping the first occurrence. Case is preserved.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

var _ Usecase = (*Service)(nil)
