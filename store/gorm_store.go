package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hustlehapa-server/models"
)

// GormStore persists every collection in Postgres through GORM. Reads
// come back ordered by creation time so listing order matches insertion
// order. Writes upsert the whole batch in one transaction; records are
// never removed from a collection, so an upsert-all put is equivalent
// to a full replace.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Jobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("fetching jobs: %w", err)
	}
	return jobs, nil
}

func (s *GormStore) PutJobs(ctx context.Context, jobs []models.Job) error {
	return s.upsert(ctx, "jobs", &jobs, len(jobs))
}

func (s *GormStore) Applications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("fetching applications: %w", err)
	}
	return apps, nil
}

func (s *GormStore) PutApplications(ctx context.Context, apps []models.Application) error {
	return s.upsert(ctx, "applications", &apps, len(apps))
}

func (s *GormStore) Ratings(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("fetching ratings: %w", err)
	}
	return ratings, nil
}

func (s *GormStore) PutRatings(ctx context.Context, ratings []models.Rating) error {
	return s.upsert(ctx, "ratings", &ratings, len(ratings))
}

func (s *GormStore) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("%w: user %s", models.ErrNotFound, email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user models.User) error {
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: user %s already exists", models.ErrConflict, user.Email)
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (s *GormStore) SaveUser(ctx context.Context, user models.User) error {
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

func (s *GormStore) upsert(ctx context.Context, collection string, batch interface{}, n int) error {
	if n == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(batch).Error
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}
