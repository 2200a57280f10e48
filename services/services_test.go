package services_test

import (
	"sync"

	"hustlehapa-server/models"
	"hustlehapa-server/services"
	"hustlehapa-server/store"
)

// testEnv bundles the three services over one seeded in-memory store,
// mirroring how main wires them.
type testEnv struct {
	store        *store.MemoryStore
	jobs         *services.JobService
	applications *services.ApplicationService
	ratings      *services.RatingService
}

func newTestEnv() *testEnv {
	st := store.NewMemoryStore()
	var mu sync.Mutex
	return &testEnv{
		store:        st,
		jobs:         services.NewJobService(st, &mu),
		applications: services.NewApplicationService(st, &mu),
		ratings:      services.NewRatingService(st, &mu),
	}
}

func seedWorker() models.User {
	return models.User{
		ID:       store.SeedWorkerID,
		Name:     "John Doe",
		Email:    "user@example.com",
		Role:     models.RoleUser,
		IsActive: true,
	}
}

func seedEmployer() models.User {
	return models.User{
		ID:       store.SeedEmployerID,
		Name:     "Jane Smith",
		Email:    "employer@example.com",
		Role:     models.RoleEmployer,
		IsActive: true,
	}
}

func newWorker(id, name string) models.User {
	return models.User{
		ID:       id,
		Name:     name,
		Email:    name + "@example.com",
		Role:     models.RoleUser,
		IsActive: true,
	}
}
