package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/profile"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]user.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[uuid.UUID]user.User{}} }

func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type memProfiles struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]profile.Profile
}

func newMemProfiles() *memProfiles { return &memProfiles{byUser: map[uuid.UUID]profile.Profile{}} }

func (m *memProfiles) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUser[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *memProfiles) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if existing, ok := m.byUser[p.UserID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = uuid.New()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	m.byUser[p.UserID] = p
	return p, nil
}

func (m *memProfiles) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[userID]; !ok {
		return profile.ErrNotFound
	}
	delete(m.byUser, userID)
	return nil
}

type memJobs struct {
	mu   sync.Mutex
	jobs []job.Job
	err  error
}

func (m *memJobs) FindAll(context.Context) ([]job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]job.Job(nil), m.jobs...), nil
}

func (m *memJobs) List(ctx context.Context) ([]job.Job, error) {
	all, err := m.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i, k := 0, len(all)-1; i < k; i, k = i+1, k-1 {
		all[i], all[k] = all[k], all[i]
	}
	return all, nil
}

func (m *memJobs) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (m *memJobs) Create(_ context.Context, j job.Job) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j.ID = uuid.New()
	j.CreatedAt = time.Now()
	m.jobs = append(m.jobs, j)
	return j, nil
}

func (m *memJobs) Update(_ context.Context, j job.Job) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.jobs {
		if m.jobs[i].ID == j.ID {
			m.jobs[i] = j
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (m *memJobs) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return job.ErrNotFound
}

func (m *memJobs) ReplaceAll(_ context.Context, jobs []job.Job) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = m.jobs[:0]
	for _, j := range jobs {
		j.ID = uuid.New()
		j.CreatedAt = time.Now()
		m.jobs = append(m.jobs, j)
	}
	return len(jobs), nil
}

type stubGenerator struct {
	mu       sync.Mutex
	response string
	err      error
}

func (s *stubGenerator) set(response string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.response, s.err = response, err
}

func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response, s.err
}

var errServiceDisabled = errors.New("api key not configured")
