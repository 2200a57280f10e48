package store

import (
	"context"
	"fmt"
	"sync"

	"hustlehapa-server/models"
)

// MemoryStore keeps every collection in process memory. It backs local
// development runs when no database is configured and doubles as the
// test fixture. All methods honor context cancellation and hand out
// copies so callers can never alias internal state.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         []models.Job
	applications []models.Application
	ratings      []models.Rating
	users        []models.User
}

// NewMemoryStore returns a store pre-loaded with the first-run dataset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:         SeedJobs(),
		applications: SeedApplications(),
		ratings:      SeedRatings(),
		users:        SeedUsers(),
	}
}

// NewEmptyMemoryStore returns a store with no records at all.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Jobs(ctx context.Context) ([]models.Job, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyJobs(s.jobs), nil
}

func (s *MemoryStore) PutJobs(ctx context.Context, jobs []models.Job) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = copyJobs(jobs)
	return nil
}

func (s *MemoryStore) Applications(ctx context.Context) ([]models.Application, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyApplications(s.applications), nil
}

func (s *MemoryStore) PutApplications(ctx context.Context, apps []models.Application) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = copyApplications(apps)
	return nil
}

func (s *MemoryStore) Ratings(ctx context.Context) ([]models.Rating, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRatings(s.ratings), nil
}

func (s *MemoryStore) PutRatings(ctx context.Context, ratings []models.Rating) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = copyRatings(ratings)
	return nil
}

func (s *MemoryStore) Users(ctx context.Context) ([]models.User, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) UserByID(ctx context.Context, id string) (models.User, error) {
	select {
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	select {
	case <-ctx.Done():
		return models.User{}, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, email)
}

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == user.ID || u.Email == user.Email {
			return fmt.Errorf("%w: user %s already exists", models.ErrConflict, user.Email)
		}
	}
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, user models.User) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
			return nil
		}
	}
	return fmt.Errorf("%w: user %s", models.ErrNotFound, user.ID)
}

func copyJobs(in []models.Job) []models.Job {
	out := make([]models.Job, len(in))
	copy(out, in)
	for i := range out {
		if out[i].RequiredSkills != nil {
			skills := make([]string, len(out[i].RequiredSkills))
			copy(skills, out[i].RequiredSkills)
			out[i].RequiredSkills = skills
		}
		if out[i].Applicants != nil {
			applicants := make([]models.Applicant, len(out[i].Applicants))
			copy(applicants, out[i].Applicants)
			out[i].Applicants = applicants
		}
	}
	return out
}

func copyApplications(in []models.Application) []models.Application {
	out := make([]models.Application, len(in))
	copy(out, in)
	return out
}

func copyRatings(in []models.Rating) []models.Rating {
	out := make([]models.Rating, len(in))
	copy(out, in)
	return out
}
