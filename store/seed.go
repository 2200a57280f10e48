package store

import (
	"log"
	"time"

	"github.com/lib/pq"

	"hustlehapa-server/models"
	"hustlehapa-server/utils"
)

// First-run dataset. Identifiers are stable so a fresh install is
// reproducible and the listing order is well defined.
const (
	SeedWorkerID   = "user-001"
	SeedEmployerID = "user-002"

	seedPassword = "password123"
)

var seedBase = time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

// SeedUsers returns the first-run user records: one worker and one
// employer, both with the documented development password.
func SeedUsers() []models.User {
	hash, err := utils.HashPassword(seedPassword)
	if err != nil {
		log.Printf("❌ Failed to hash seed password: %v", err)
	}
	return []models.User{
		{
			ID:           SeedWorkerID,
			Name:         "John Doe",
			Email:        "user@example.com",
			PasswordHash: hash,
			Role:         models.RoleUser,
			Rating:       5.0, // matches the seed rating ledger
			IsActive:     true,
			CreatedAt:    seedBase,
		},
		{
			ID:           SeedEmployerID,
			Name:         "Jane Smith",
			Email:        "employer@example.com",
			PasswordHash: hash,
			Role:         models.RoleEmployer,
			IsActive:     true,
			CreatedAt:    seedBase.Add(time.Minute),
		},
	}
}

// SeedJobs returns the first-run job postings.
func SeedJobs() []models.Job {
	return []models.Job{
		{
			ID:             "job-001",
			Title:          "Mjengo Helper Needed",
			Employer:       "Construction Co.",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, Westlands",
			Type:           models.TypeMjengo,
			Pay:            "KES 800/day",
			Rate:           800,
			Description:    "Looking for a reliable helper for construction work. Experience preferred.",
			RequiredSkills: pq.StringArray{"Physical strength", "Basic construction knowledge"},
			DatePosted:     "2024-01-15",
			Status:         models.JobStatusOpen,
			CreatedAt:      seedBase,
		},
		{
			ID:             "job-002",
			Title:          "Babysitting for Weekend",
			Employer:       "Sarah Johnson",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, Karen",
			Type:           models.TypeBabysitting,
			Pay:            "KES 1,500/day",
			Rate:           1500,
			Description:    "Need a caring babysitter for my 5-year-old daughter this weekend.",
			RequiredSkills: pq.StringArray{"Childcare experience", "First aid knowledge", "Patience"},
			DatePosted:     "2024-01-14",
			Status:         models.JobStatusClosed, // filled by the seeded accepted application
			CreatedAt:      seedBase.Add(1 * time.Minute),
		},
		{
			ID:             "job-003",
			Title:          "Laundry Service",
			Employer:       "Hotel Services Ltd",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, City Center",
			Type:           models.TypeLaundry,
			Pay:            "KES 500/day",
			Rate:           500,
			Description:    "Seeking someone to help with laundry services at our facility.",
			RequiredSkills: pq.StringArray{"Attention to detail", "Time management"},
			DatePosted:     "2024-01-13",
			Status:         models.JobStatusOpen,
			CreatedAt:      seedBase.Add(2 * time.Minute),
		},
		{
			ID:             "job-004",
			Title:          "Carpentry Assistant",
			Employer:       "Woodworks Kenya",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, Industrial Area",
			Type:           models.TypeCarpentry,
			Pay:            "KES 1,200/day",
			Rate:           1200,
			Description:    "Experienced carpenter needed for furniture making workshop.",
			RequiredSkills: pq.StringArray{"Carpentry skills", "Tool knowledge", "Precision"},
			DatePosted:     "2024-01-12",
			Status:         models.JobStatusOpen,
			CreatedAt:      seedBase.Add(3 * time.Minute),
		},
		{
			ID:             "job-005",
			Title:          "Gardening Services",
			Employer:       "Green Thumb Estates",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, Lavington",
			Type:           models.TypeGardening,
			Pay:            "KES 700/day",
			Rate:           700,
			Description:    "Looking for a gardener to maintain residential garden.",
			RequiredSkills: pq.StringArray{"Gardening knowledge", "Physical fitness", "Plant care"},
			DatePosted:     "2024-01-11",
			Status:         models.JobStatusOpen,
			CreatedAt:      seedBase.Add(4 * time.Minute),
		},
		{
			ID:             "job-006",
			Title:          "Cleaning Services",
			Employer:       "Clean Home Services",
			EmployerID:     SeedEmployerID,
			Location:       "Nairobi, Parklands",
			Type:           models.TypeCleaning,
			Pay:            "KES 600/day",
			Rate:           600,
			Description:    "Part-time cleaning assistant needed for office spaces.",
			RequiredSkills: pq.StringArray{"Cleaning experience", "Reliability"},
			DatePosted:     "2024-01-10",
			Status:         models.JobStatusOpen,
			CreatedAt:      seedBase.Add(5 * time.Minute),
		},
	}
}

// SeedApplications returns the first-run applications: one pending on the
// mjengo job and one accepted on the babysitting job.
func SeedApplications() []models.Application {
	return []models.Application{
		{
			ID:          "app-001",
			JobID:       "job-001",
			UserID:      SeedWorkerID,
			UserName:    "John Doe",
			UserEmail:   "user@example.com",
			JobTitle:    "Mjengo Helper Needed",
			AppliedDate: "2024-01-14",
			Status:      models.StatusPending,
			CreatedAt:   seedBase.Add(10 * time.Minute),
		},
		{
			ID:          "app-002",
			JobID:       "job-002",
			UserID:      SeedWorkerID,
			UserName:    "John Doe",
			UserEmail:   "user@example.com",
			JobTitle:    "Babysitting for Weekend",
			AppliedDate: "2024-01-13",
			Status:      models.StatusAccepted,
			JobDate:     "2024-01-20",
			CreatedAt:   seedBase.Add(11 * time.Minute),
		},
	}
}

// SeedRatings returns the first-run rating ledger.
func SeedRatings() []models.Rating {
	return []models.Rating{
		{
			ID:           "rating-001",
			UserID:       SeedWorkerID,
			JobID:        "job-002",
			JobTitle:     "Babysitting for Weekend",
			Rating:       5,
			Comment:      "Excellent work! Very reliable and caring.",
			Date:         "2024-01-18",
			FromEmployer: "Sarah Johnson",
			CreatedAt:    seedBase.Add(20 * time.Minute),
		},
	}
}
