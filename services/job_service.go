package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hustlehapa-server/models"
	"hustlehapa-server/store"
)

// JobService owns the job board: employers post jobs, everyone browses
// the open ones. The mutex is shared with the application and rating
// services so every read-modify-write across the three collections is
// serialized.
type JobService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewJobService(st store.Store, mu *sync.Mutex) *JobService {
	return &JobService{store: st, mu: mu}
}

// PostJob creates a new open job for the given employer.
func (s *JobService) PostJob(ctx context.Context, data models.JobCreate, employer models.User) (models.Job, error) {
	if !employer.IsEmployer() {
		return models.Job{}, fmt.Errorf("%w: only employers can post jobs", models.ErrPolicy)
	}
	if strings.TrimSpace(data.Title) == "" {
		return models.Job{}, fmt.Errorf("%w: title is required", models.ErrValidation)
	}
	if strings.TrimSpace(data.Location) == "" {
		return models.Job{}, fmt.Errorf("%w: location is required", models.ErrValidation)
	}
	if strings.TrimSpace(string(data.Type)) == "" {
		return models.Job{}, fmt.Errorf("%w: job type is required", models.ErrValidation)
	}
	if data.Rate < 0 {
		return models.Job{}, fmt.Errorf("%w: rate cannot be negative", models.ErrValidation)
	}

	pay := strings.TrimSpace(data.Pay)
	if pay == "" {
		pay = fmt.Sprintf("KES %.0f/day", data.Rate)
	}

	job := models.Job{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(data.Title),
		Employer:       employer.Name,
		EmployerID:     employer.ID,
		Location:       strings.TrimSpace(data.Location),
		Type:           data.Type,
		Pay:            pay,
		Rate:           data.Rate,
		Description:    data.Description,
		RequiredSkills: pq.StringArray(data.RequiredSkills),
		DatePosted:     dateNow(),
		Status:         models.JobStatusOpen,
		Applicants:     []models.Applicant{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return models.Job{}, err
	}
	jobs = append(jobs, job)
	if err := s.store.PutJobs(ctx, jobs); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// ListOpenJobs returns every job still accepting applications, oldest
// first, with applicant summaries attached.
func (s *JobService) ListOpenJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.store.Applications(ctx)
	if err != nil {
		return nil, err
	}

	open := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.IsOpen() {
			open = append(open, withApplicants(job, apps))
		}
	}
	return open, nil
}

// ListJobsByEmployer returns all of an employer's jobs, open or closed,
// with applicant summaries attached.
func (s *JobService) ListJobsByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.store.Applications(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]models.Job, 0)
	for _, job := range jobs {
		if job.EmployerID == employerID {
			mine = append(mine, withApplicants(job, apps))
		}
	}
	return mine, nil
}

// withApplicants derives a job's applicant list from the application
// collection. Applicants are never stored on the job record itself.
func withApplicants(job models.Job, apps []models.Application) models.Job {
	applicants := make([]models.Applicant, 0)
	for _, app := range apps {
		if app.JobID == job.ID {
			applicants = append(applicants, app.Summary())
		}
	}
	job.Applicants = applicants
	return job
}

func dateNow() string {
	return time.Now().Format("2006-01-02")
}
