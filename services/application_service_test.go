package services_test

import (
	"context"
	"errors"
	"testing"

	"hustlehapa-server/models"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	app, err := env.applications.Apply(ctx, "job-003", newWorker("user-003", "mary"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if app.Status != models.StatusPending {
		t.Errorf("new application status = %s, want pending", app.Status)
	}
	if app.JobID != "job-003" || app.JobTitle != "Laundry Service" {
		t.Errorf("job snapshot = %s/%s", app.JobID, app.JobTitle)
	}
	if app.UserName != "mary" || app.UserEmail != "mary@example.com" {
		t.Errorf("applicant snapshot = %s/%s", app.UserName, app.UserEmail)
	}
	if app.AppliedDate == "" {
		t.Error("applied date not set")
	}

	apps, err := env.applications.ApplicationsForJob(ctx, "job-003", seedEmployer())
	if err != nil {
		t.Fatalf("ApplicationsForJob: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != app.ID {
		t.Errorf("applications for job-003 = %+v", apps)
	}
}

func TestApplyUnknownJob(t *testing.T) {
	env := newTestEnv()

	_, err := env.applications.Apply(context.Background(), "job-999", seedWorker())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Apply(job-999) error = %v, want ErrNotFound", err)
	}
}

func TestApplyTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	// user-001 already has a seeded application on job-001
	_, err := env.applications.Apply(ctx, "job-001", seedWorker())
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("duplicate apply error = %v, want ErrConflict", err)
	}

	apps, _ := env.applications.ApplicationsForJob(ctx, "job-001", seedEmployer())
	if len(apps) != 1 {
		t.Errorf("applications after rejected duplicate = %d, want 1", len(apps))
	}
}

func TestApplyAsEmployerForbidden(t *testing.T) {
	env := newTestEnv()

	_, err := env.applications.Apply(context.Background(), "job-003", seedEmployer())
	if !errors.Is(err, models.ErrPolicy) {
		t.Errorf("employer apply error = %v, want ErrPolicy", err)
	}
}

func TestApplyToClosedJobConflicts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	// accepting the seeded pending application closes job-001
	if _, err := env.applications.Decide(ctx, "app-001", "accepted", "2024-02-01", seedEmployer()); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	_, err := env.applications.Apply(ctx, "job-001", newWorker("user-003", "mary"))
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("apply to closed job error = %v, want ErrConflict", err)
	}
}

func TestDecideUnknownApplication(t *testing.T) {
	env := newTestEnv()

	_, err := env.applications.Decide(context.Background(), "app-999", "accepted", "2024-02-01", seedEmployer())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Decide(app-999) error = %v, want ErrNotFound", err)
	}
}

func TestDecideInvalidDecision(t *testing.T) {
	env := newTestEnv()

	_, err := env.applications.Decide(context.Background(), "app-001", "pending", "", seedEmployer())
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Decide(pending) error = %v, want ErrValidation", err)
	}
}

func TestAcceptRequiresJobDate(t *testing.T) {
	env := newTestEnv()

	_, err := env.applications.Decide(context.Background(), "app-001", "accepted", "  ", seedEmployer())
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("accept without job date error = %v, want ErrValidation", err)
	}
}

func TestAcceptClosesJob(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	app, err := env.applications.Decide(ctx, "app-001", "accepted", "2024-02-01", seedEmployer())
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if app.Status != models.StatusAccepted {
		t.Errorf("decided status = %s, want accepted", app.Status)
	}
	if app.JobDate != "2024-02-01" {
		t.Errorf("job date = %q, want 2024-02-01", app.JobDate)
	}

	open, err := env.jobs.ListOpenJobs(ctx)
	if err != nil {
		t.Fatalf("ListOpenJobs: %v", err)
	}
	for _, j := range open {
		if j.ID == "job-001" {
			t.Error("job-001 still open after acceptance")
		}
	}
}

func TestRejectLeavesJobOpen(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	app, err := env.applications.Decide(ctx, "app-001", "rejected", "", seedEmployer())
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if app.Status != models.StatusRejected {
		t.Errorf("decided status = %s, want rejected", app.Status)
	}
	if app.JobDate != "" {
		t.Errorf("rejected application has job date %q", app.JobDate)
	}

	open, _ := env.jobs.ListOpenJobs(ctx)
	found := false
	for _, j := range open {
		if j.ID == "job-001" {
			found = true
		}
	}
	if !found {
		t.Error("job-001 should stay open after rejection")
	}
}

func TestDecideRequiresEmployerRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	// user-001 filed app-001 and may not accept it themself
	_, err := env.applications.Decide(ctx, "app-001", "accepted", "2024-02-01", seedWorker())
	if !errors.Is(err, models.ErrPolicy) {
		t.Fatalf("worker decision error = %v, want ErrPolicy", err)
	}

	apps, err := env.applications.ApplicationsForJob(ctx, "job-001", seedEmployer())
	if err != nil {
		t.Fatalf("ApplicationsForJob: %v", err)
	}
	if apps[0].Status != models.StatusPending {
		t.Errorf("application status after denied decision = %s, want pending", apps[0].Status)
	}

	open, _ := env.jobs.ListOpenJobs(ctx)
	found := false
	for _, j := range open {
		if j.ID == "job-001" {
			found = true
		}
	}
	if !found {
		t.Error("job-001 closed by a denied decision")
	}
}

func TestDecideRequiresJobOwnership(t *testing.T) {
	env := newTestEnv()

	stranger := models.User{ID: "user-888", Name: "Other Employer", Email: "other@example.com", Role: models.RoleEmployer, IsActive: true}
	_, err := env.applications.Decide(context.Background(), "app-001", "accepted", "2024-02-01", stranger)
	if !errors.Is(err, models.ErrPolicy) {
		t.Errorf("stranger decision error = %v, want ErrPolicy", err)
	}
}

func TestApplicationsForJobRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	if _, err := env.applications.ApplicationsForJob(ctx, "job-001", seedWorker()); !errors.Is(err, models.ErrPolicy) {
		t.Errorf("worker listing applicants error = %v, want ErrPolicy", err)
	}

	stranger := models.User{ID: "user-888", Name: "Other Employer", Email: "other@example.com", Role: models.RoleEmployer, IsActive: true}
	if _, err := env.applications.ApplicationsForJob(ctx, "job-001", stranger); !errors.Is(err, models.ErrPolicy) {
		t.Errorf("stranger listing applicants error = %v, want ErrPolicy", err)
	}

	if _, err := env.applications.ApplicationsForJob(ctx, "job-999", seedEmployer()); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("listing applicants for unknown job error = %v, want ErrNotFound", err)
	}
}

func TestDecidedApplicationIsFinal(t *testing.T) {
	env := newTestEnv()

	// app-002 is seeded as accepted
	_, err := env.applications.Decide(context.Background(), "app-002", "rejected", "", seedEmployer())
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("re-deciding accepted application error = %v, want ErrConflict", err)
	}
}

func TestSingleAcceptedApplicantPerJob(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	first, err := env.applications.Apply(ctx, "job-003", newWorker("user-003", "mary"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	second, err := env.applications.Apply(ctx, "job-003", newWorker("user-004", "peter"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if _, err := env.applications.Decide(ctx, first.ID, "accepted", "2024-02-05", seedEmployer()); err != nil {
		t.Fatalf("Decide first: %v", err)
	}
	_, err = env.applications.Decide(ctx, second.ID, "accepted", "2024-02-05", seedEmployer())
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("second accept error = %v, want ErrConflict", err)
	}

	// the losing applicant can still be rejected
	if _, err := env.applications.Decide(ctx, second.ID, "rejected", "", seedEmployer()); err != nil {
		t.Errorf("rejecting second applicant: %v", err)
	}
}

func TestApplicationsForUser(t *testing.T) {
	env := newTestEnv()

	apps, err := env.applications.ApplicationsForUser(context.Background(), seedWorker().ID)
	if err != nil {
		t.Fatalf("ApplicationsForUser: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("seeded worker applications = %d, want 2", len(apps))
	}
	if apps[0].ID != "app-001" || apps[1].ID != "app-002" {
		t.Errorf("applications out of order: %s, %s", apps[0].ID, apps[1].ID)
	}
}

func TestApplicantListsStayConsistent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	if _, err := env.applications.Apply(ctx, "job-003", newWorker("user-003", "mary")); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	mine, err := env.jobs.ListJobsByEmployer(ctx, seedEmployer().ID)
	if err != nil {
		t.Fatalf("ListJobsByEmployer: %v", err)
	}
	for _, job := range mine {
		apps, err := env.applications.ApplicationsForJob(ctx, job.ID, seedEmployer())
		if err != nil {
			t.Fatalf("ApplicationsForJob(%s): %v", job.ID, err)
		}
		if len(job.Applicants) != len(apps) {
			t.Errorf("job %s applicants = %d, applications = %d", job.ID, len(job.Applicants), len(apps))
		}
	}
}
