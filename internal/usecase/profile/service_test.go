package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"jobmatch/internal/domain/profile"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	byUser    map[uuid.UUID]profile.Profile
	upsertErr error
	findErr   error
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byUser: map[uuid.UUID]profile.Profile{}}
}

func (m *mockProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	if m.findErr != nil {
		return profile.Profile{}, m.findErr
	}
	p, ok := m.byUser[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	if m.upsertErr != nil {
		return profile.Profile{}, m.upsertErr
	}
	if existing, ok := m.byUser[p.UserID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = uuid.New()
	}
	m.byUser[p.UserID] = p
	return p, nil
}

func (m *mockProfileRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	if _, ok := m.byUser[userID]; !ok {
		return profile.ErrNotFound
	}
	delete(m.byUser, userID)
	return nil
}

func validInput() UpsertInput {
	return UpsertInput{
		Name:              " Sam ",
		Location:          "Austin, TX",
		YearsOfExperience: 3,
		Skills:            []string{" React", "JavaScript", "", "React", "react"},
		PreferredJobType:  "Remote",
	}
}

func TestUpsert_NormalizesAndKeepsOneProfilePerUser(t *testing.T) {
	repo := newMockProfileRepo()
	s := NewService(repo, nil)
	userID := uuid.New()
	ctx := context.Background()

	first, err := s.Upsert(ctx, userID, validInput())
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.Name != "Sam" || first.PreferredJobType != profile.PreferRemote {
		t.Fatalf("unexpected profile: %+v", first)
	}
	if want := []string{"React", "JavaScript", "react"}; !reflect.DeepEqual(first.Skills, want) {
		t.Fatalf("unexpected skills: %v", first.Skills)
	}

	in := validInput()
	in.PreferredJobType = ""
	second, err := s.Upsert(ctx, userID, in)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same profile id on update")
	}
	if second.PreferredJobType != profile.PreferAny {
		t.Fatalf("expected default preference any, got %q", second.PreferredJobType)
	}
	if len(repo.byUser) != 1 {
		t.Fatalf("expected one profile, got %d", len(repo.byUser))
	}
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UpsertInput)
	}{
		{"missing name", func(in *UpsertInput) { in.Name = "  " }},
		{"missing location", func(in *UpsertInput) { in.Location = "" }},
		{"negative experience", func(in *UpsertInput) { in.YearsOfExperience = -1 }},
		{"no skills", func(in *UpsertInput) { in.Skills = []string{" ", ""} }},
		{"hybrid preference", func(in *UpsertInput) { in.PreferredJobType = "hybrid" }},
	}

	s := NewService(newMockProfileRepo(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			if _, err := s.Upsert(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestMeAndDelete(t *testing.T) {
	repo := newMockProfileRepo()
	s := NewService(repo, nil)
	userID := uuid.New()
	ctx := context.Background()

	if _, err := s.Me(ctx, userID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Upsert(ctx, userID, validInput()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := s.Me(ctx, userID); err != nil {
		t.Fatalf("me: %v", err)
	}
	if err := s.Delete(ctx, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, userID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	repo.findErr = errors.New("db down")
	if _, err := s.Me(ctx, userID); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
