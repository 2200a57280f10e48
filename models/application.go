package models

import (
	"fmt"
	"time"
)

// ApplicationStatus values form the application state machine.
//
// Valid status graph:
//
//	pending ──► accepted
//	    │
//	    └─────► rejected
//
// accepted and rejected are terminal states.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusAccepted, StatusRejected},
	// accepted and rejected are terminal, no outgoing transitions
}

// ParseDecision converts a raw string to a decision status, returning an
// error for anything other than the two decision values.
func ParseDecision(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusAccepted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown decision %q", ErrValidation, s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to ApplicationStatus) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true when status admits no further transitions.
func IsTerminal(s ApplicationStatus) bool {
	return len(validTransitions[s]) == 0
}

// Application is a worker's request to be considered for a job. The user
// fields are a snapshot of the applicant's identity at apply time; later
// identity changes do not retroactively alter historical applications.
type Application struct {
	ID          string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	JobID       string            `json:"job_id" gorm:"type:varchar(36);not null;index:idx_applications_job_user,unique"`
	UserID      string            `json:"user_id" gorm:"type:varchar(36);not null;index:idx_applications_job_user,unique"`
	UserName    string            `json:"user_name" gorm:"type:varchar(255);not null"`
	UserEmail   string            `json:"user_email" gorm:"type:varchar(255);not null"`
	JobTitle    string            `json:"job_title" gorm:"type:varchar(200);not null"`
	AppliedDate string            `json:"applied_date" gorm:"type:varchar(10);not null"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`
	JobDate     string            `json:"job_date,omitempty" gorm:"type:varchar(10)"` // set on acceptance
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName specifies the table name for the Application model
func (Application) TableName() string {
	return "applications"
}

// Summary returns the display entry shown on the job's applicant list.
func (a *Application) Summary() Applicant {
	return Applicant{
		UserID:      a.UserID,
		UserName:    a.UserName,
		UserEmail:   a.UserEmail,
		AppliedDate: a.AppliedDate,
		Status:      a.Status,
	}
}

// DecisionRequest represents the employer's accept/reject payload
type DecisionRequest struct {
	Status  string `json:"status" binding:"required"`
	JobDate string `json:"job_date"`
}
