package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hustlehapa-server/models"
	"hustlehapa-server/store"
)

// ApplicationService runs the application workflow: workers apply to
// open jobs, employers accept or reject. Accepting an application
// closes its job, so each job ends up with at most one accepted worker.
type ApplicationService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewApplicationService(st store.Store, mu *sync.Mutex) *ApplicationService {
	return &ApplicationService{store: st, mu: mu}
}

// Apply records a new pending application from the given worker.
func (s *ApplicationService) Apply(ctx context.Context, jobID string, applicant models.User) (models.Application, error) {
	if applicant.IsEmployer() {
		return models.Application{}, fmt.Errorf("%w: employers cannot apply for jobs", models.ErrPolicy)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return models.Application{}, err
	}
	var job *models.Job
	for i := range jobs {
		if jobs[i].ID == jobID {
			job = &jobs[i]
			break
		}
	}
	if job == nil {
		return models.Application{}, fmt.Errorf("%w: job %s", models.ErrNotFound, jobID)
	}
	if !job.IsOpen() {
		return models.Application{}, fmt.Errorf("%w: job is no longer open", models.ErrConflict)
	}

	apps, err := s.store.Applications(ctx)
	if err != nil {
		return models.Application{}, err
	}
	for _, app := range apps {
		if app.JobID == jobID && app.UserID == applicant.ID {
			return models.Application{}, fmt.Errorf("%w: you have already applied for this job", models.ErrConflict)
		}
	}

	application := models.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		UserID:      applicant.ID,
		UserName:    applicant.Name,
		UserEmail:   applicant.Email,
		JobTitle:    job.Title,
		AppliedDate: dateNow(),
		Status:      models.StatusPending,
	}
	apps = append(apps, application)
	if err := s.store.PutApplications(ctx, apps); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

// Decide accepts or rejects a pending application on behalf of the
// employer who posted its job. Accepting requires a job date and closes
// the job; a decided application is final.
func (s *ApplicationService) Decide(ctx context.Context, applicationID, decision, jobDate string, actor models.User) (models.Application, error) {
	target, err := models.ParseDecision(decision)
	if err != nil {
		return models.Application{}, err
	}
	if !actor.IsEmployer() {
		return models.Application{}, fmt.Errorf("%w: only employers can decide applications", models.ErrPolicy)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.store.Applications(ctx)
	if err != nil {
		return models.Application{}, err
	}
	idx := -1
	for i := range apps {
		if apps[i].ID == applicationID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Application{}, fmt.Errorf("%w: application %s", models.ErrNotFound, applicationID)
	}

	app := apps[idx]
	job, err := s.jobLocked(ctx, app.JobID)
	if err != nil {
		return models.Application{}, err
	}
	if job.EmployerID != actor.ID {
		return models.Application{}, fmt.Errorf("%w: you can only decide applications for your own jobs", models.ErrPolicy)
	}
	if !models.IsTransitionAllowed(app.Status, target) {
		return models.Application{}, fmt.Errorf("%w: application already %s", models.ErrConflict, app.Status)
	}

	if target == models.StatusAccepted {
		if strings.TrimSpace(jobDate) == "" {
			return models.Application{}, fmt.Errorf("%w: job date is required when accepting", models.ErrValidation)
		}
		for _, other := range apps {
			if other.JobID == app.JobID && other.Status == models.StatusAccepted {
				return models.Application{}, fmt.Errorf("%w: job already has an accepted applicant", models.ErrConflict)
			}
		}
		app.JobDate = jobDate
	}
	app.Status = target
	apps[idx] = app

	// The application write lands first so a failed job update leaves a
	// decided application on a still-open job, which the next decision
	// attempt surfaces as a conflict rather than silent corruption.
	if err := s.store.PutApplications(ctx, apps); err != nil {
		return models.Application{}, err
	}
	if target == models.StatusAccepted {
		if err := s.closeJobLocked(ctx, app.JobID); err != nil {
			return models.Application{}, err
		}
	}
	return app, nil
}

// ApplicationsForJob returns every application filed against a job,
// oldest first. Applicant records carry contact details, so the list is
// only served to the employer who posted the job.
func (s *ApplicationService) ApplicationsForJob(ctx context.Context, jobID string, actor models.User) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.jobLocked(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != actor.ID {
		return nil, fmt.Errorf("%w: you can only view applicants for your own jobs", models.ErrPolicy)
	}

	apps, err := s.store.Applications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0)
	for _, app := range apps {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

// ApplicationsForUser returns every application a worker has filed,
// oldest first.
func (s *ApplicationService) ApplicationsForUser(ctx context.Context, userID string) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.store.Applications(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Application, 0)
	for _, app := range apps {
		if app.UserID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

// jobLocked looks up a job by id. Caller must hold the mutex.
func (s *ApplicationService) jobLocked(ctx context.Context, jobID string) (models.Job, error) {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return models.Job{}, err
	}
	for _, job := range jobs {
		if job.ID == jobID {
			return job, nil
		}
	}
	return models.Job{}, fmt.Errorf("%w: job %s", models.ErrNotFound, jobID)
}

// closeJobLocked marks a job closed. Caller must hold the mutex.
func (s *ApplicationService) closeJobLocked(ctx context.Context, jobID string) error {
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			jobs[i].Status = models.JobStatusClosed
			return s.store.PutJobs(ctx, jobs)
		}
	}
	return fmt.Errorf("%w: job %s", models.ErrNotFound, jobID)
}
