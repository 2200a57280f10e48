package models

import (
	"time"

	"github.com/lib/pq"
)

// JobType categorizes a posting. The set below mirrors the categories the
// marketplace launched with; new categories are accepted as-is, so postings
// are never rejected for an unknown type.
type JobType string

const (
	TypeMjengo      JobType = "mjengo"
	TypeBabysitting JobType = "babysitting"
	TypeLaundry     JobType = "laundry"
	TypeCarpentry   JobType = "carpentry"
	TypeGardening   JobType = "gardening"
	TypeCleaning    JobType = "cleaning"
)

// JobStatus represents the lifecycle of a posting. A job closes when an
// applicant is accepted.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job represents a posted work opportunity.
type Job struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title          string         `json:"title" gorm:"type:varchar(200);not null"`
	Employer       string         `json:"employer" gorm:"type:varchar(255);not null"` // display name snapshot
	EmployerID     string         `json:"employer_id" gorm:"type:varchar(36);not null;index"`
	Location       string         `json:"location" gorm:"type:varchar(200);not null"`
	Type           JobType        `json:"type" gorm:"type:varchar(30);not null"`
	Pay            string         `json:"pay" gorm:"type:varchar(50)"` // display string, e.g. "KES 800/day"
	Rate           float64        `json:"rate" gorm:"type:decimal(10,2);not null"`
	Description    string         `json:"description" gorm:"type:text"`
	RequiredSkills pq.StringArray `json:"required_skills" gorm:"type:text[]"`
	DatePosted     string         `json:"date_posted" gorm:"type:varchar(10);not null"`
	Status         JobStatus      `json:"status" gorm:"type:varchar(10);not null;default:'open'"`

	// Applicants is derived from the applications collection at read time;
	// it is never stored.
	Applicants []Applicant `json:"applicants" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}

// IsOpen checks if the job still accepts applications
func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}

// Applicant is the display summary of an application shown on a job.
type Applicant struct {
	UserID      string            `json:"user_id"`
	UserName    string            `json:"user_name"`
	UserEmail   string            `json:"user_email"`
	AppliedDate string            `json:"applied_date"`
	Status      ApplicationStatus `json:"status"`
}

// JobCreate represents the request structure for posting a job
type JobCreate struct {
	Title          string   `json:"title" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Type           JobType  `json:"type" binding:"required"`
	Pay            string   `json:"pay"`
	Rate           float64  `json:"rate"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}
