// Package store provides durable persistence for the three marketplace
// collections (jobs, applications, ratings) plus the user records that
// carry the cached reputation value.
package store

import (
	"context"

	"hustlehapa-server/models"
)

// Store is the collection-level persistence contract. Reads return the
// whole collection in insertion order; writes replace it. Records are never
// deleted in-core. The engines perform their read-modify-write sequences
// under a shared lock, so implementations only need per-call consistency.
type Store interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	PutJobs(ctx context.Context, jobs []models.Job) error

	Applications(ctx context.Context) ([]models.Application, error)
	PutApplications(ctx context.Context, apps []models.Application) error

	Ratings(ctx context.Context) ([]models.Rating, error)
	PutRatings(ctx context.Context, ratings []models.Rating) error

	Users(ctx context.Context) ([]models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) error
	SaveUser(ctx context.Context, user models.User) error
}
