package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/google/uuid"

	"hustlehapa-server/models"
	"hustlehapa-server/store"
)

// RatingService keeps the reputation ledger. Ratings are append-only;
// a worker's reputation is the mean of their ledger entries, cached on
// the user record as an advisory copy.
type RatingService struct {
	store store.Store
	mu    *sync.Mutex
}

func NewRatingService(st store.Store, mu *sync.Mutex) *RatingService {
	return &RatingService{store: st, mu: mu}
}

// RateCompletedWork lets an employer rate the worker they accepted for
// one of their own jobs.
func (s *RatingService) RateCompletedWork(ctx context.Context, jobID string, employer models.User, in models.RatingCreate) (models.Rating, error) {
	if !employer.IsEmployer() {
		return models.Rating{}, fmt.Errorf("%w: only employers can rate workers", models.ErrPolicy)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Rating{}, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return models.Rating{}, err
	}
	var job *models.Job
	for i := range jobs {
		if jobs[i].ID == jobID {
			job = &jobs[i]
			break
		}
	}
	if job == nil {
		return models.Rating{}, fmt.Errorf("%w: job %s", models.ErrNotFound, jobID)
	}
	if job.EmployerID != employer.ID {
		return models.Rating{}, fmt.Errorf("%w: you can only rate your own jobs", models.ErrPolicy)
	}

	apps, err := s.store.Applications(ctx)
	if err != nil {
		return models.Rating{}, err
	}
	var accepted *models.Application
	for i := range apps {
		if apps[i].JobID == jobID && apps[i].Status == models.StatusAccepted {
			accepted = &apps[i]
			break
		}
	}
	if accepted == nil {
		return models.Rating{}, fmt.Errorf("%w: no completed application for this job", models.ErrNotFound)
	}

	rating := models.Rating{
		ID:           uuid.NewString(),
		UserID:       accepted.UserID,
		JobID:        job.ID,
		JobTitle:     job.Title,
		Rating:       in.Rating,
		Comment:      in.Comment,
		Date:         dateNow(),
		FromEmployer: employer.Name,
	}

	ratings, err := s.store.Ratings(ctx)
	if err != nil {
		return models.Rating{}, err
	}
	ratings = append(ratings, rating)
	if err := s.store.PutRatings(ctx, ratings); err != nil {
		return models.Rating{}, err
	}

	// The ledger is the source of truth; a failed cache refresh is only
	// logged and the reconciliation job heals it later.
	if err := s.refreshCachedScoreLocked(ctx, accepted.UserID, ratings); err != nil {
		log.Printf("❌ Failed to refresh cached rating for %s: %v", accepted.UserID, err)
	}
	return rating, nil
}

// RatingsForUser returns a worker's rating ledger, oldest first.
func (s *RatingService) RatingsForUser(ctx context.Context, userID string) ([]models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings, err := s.store.Ratings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Rating, 0)
	for _, r := range ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// AverageRating computes a worker's reputation from the ledger, rounded
// to one decimal place. A worker with no ratings scores 0.
func (s *RatingService) AverageRating(ctx context.Context, userID string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings, err := s.store.Ratings(ctx)
	if err != nil {
		return 0, err
	}
	return meanFor(ratings, userID), nil
}

// ReconcileAll recomputes every worker's cached score from the ledger
// and repairs any that drifted. Returns the number repaired.
func (s *RatingService) ReconcileAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.store.Users(ctx)
	if err != nil {
		return 0, err
	}
	ratings, err := s.store.Ratings(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, u := range users {
		if !u.IsWorker() {
			continue
		}
		want := meanFor(ratings, u.ID)
		if u.Rating == want {
			continue
		}
		u.Rating = want
		if err := s.store.SaveUser(ctx, u); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// refreshCachedScoreLocked recomputes one worker's cached score.
// Caller must hold the mutex.
func (s *RatingService) refreshCachedScoreLocked(ctx context.Context, userID string, ratings []models.Rating) error {
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Rating = meanFor(ratings, userID)
	return s.store.SaveUser(ctx, user)
}

func meanFor(ratings []models.Rating, userID string) float64 {
	sum, n := 0, 0
	for _, r := range ratings {
		if r.UserID == userID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return roundScore(float64(sum) / float64(n))
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
