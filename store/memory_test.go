package store_test

import (
	"context"
	"errors"
	"testing"

	"hustlehapa-server/models"
	"hustlehapa-server/store"
)

func TestNewMemoryStoreSeedsFirstRunDataset(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	jobs, err := st.Jobs(ctx)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 6 {
		t.Fatalf("seeded jobs = %d, want 6", len(jobs))
	}
	if jobs[0].ID != "job-001" {
		t.Errorf("first seeded job = %s, want job-001", jobs[0].ID)
	}

	apps, err := st.Applications(ctx)
	if err != nil {
		t.Fatalf("Applications: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("seeded applications = %d, want 2", len(apps))
	}

	ratings, err := st.Ratings(ctx)
	if err != nil {
		t.Fatalf("Ratings: %v", err)
	}
	if len(ratings) != 1 {
		t.Errorf("seeded ratings = %d, want 1", len(ratings))
	}

	users, err := st.Users(ctx)
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("seeded users = %d, want 2", len(users))
	}
}

func TestPutReplacesCollection(t *testing.T) {
	ctx := context.Background()
	st := store.NewEmptyMemoryStore()

	if err := st.PutJobs(ctx, []models.Job{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("PutJobs: %v", err)
	}
	if err := st.PutJobs(ctx, []models.Job{{ID: "c"}}); err != nil {
		t.Fatalf("PutJobs: %v", err)
	}

	jobs, err := st.Jobs(ctx)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "c" {
		t.Errorf("jobs after second put = %+v, want single job c", jobs)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	jobs, _ := st.Jobs(ctx)
	jobs[0].Title = "mutated"
	jobs[0].RequiredSkills[0] = "mutated"

	again, _ := st.Jobs(ctx)
	if again[0].Title == "mutated" {
		t.Error("mutating a returned job leaked into the store")
	}
	if again[0].RequiredSkills[0] == "mutated" {
		t.Error("mutating a returned skills slice leaked into the store")
	}
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	user, err := st.UserByID(ctx, store.SeedWorkerID)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Errorf("seed worker email = %s", user.Email)
	}

	if _, err := st.UserByID(ctx, "nope"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UserByID(nope) error = %v, want ErrNotFound", err)
	}
	if _, err := st.UserByEmail(ctx, "nope@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UserByEmail(nope) error = %v, want ErrNotFound", err)
	}
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	err := st.CreateUser(ctx, models.User{ID: "user-999", Email: "user@example.com"})
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("duplicate email error = %v, want ErrConflict", err)
	}
	err = st.CreateUser(ctx, models.User{ID: store.SeedWorkerID, Email: "fresh@example.com"})
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("duplicate id error = %v, want ErrConflict", err)
	}

	if err := st.CreateUser(ctx, models.User{ID: "user-999", Email: "fresh@example.com"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := st.UserByID(ctx, "user-999"); err != nil {
		t.Errorf("created user not found: %v", err)
	}
}

func TestSaveUserRequiresExisting(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	err := st.SaveUser(ctx, models.User{ID: "ghost"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("SaveUser(ghost) error = %v, want ErrNotFound", err)
	}

	user, _ := st.UserByID(ctx, store.SeedWorkerID)
	user.Rating = 3.5
	if err := st.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	again, _ := st.UserByID(ctx, store.SeedWorkerID)
	if again.Rating != 3.5 {
		t.Errorf("saved rating = %v, want 3.5", again.Rating)
	}
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := store.NewMemoryStore()
	if _, err := st.Jobs(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Jobs with cancelled ctx error = %v, want context.Canceled", err)
	}
	if err := st.PutRatings(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("PutRatings with cancelled ctx error = %v, want context.Canceled", err)
	}
}
