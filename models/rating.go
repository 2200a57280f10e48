package models

import "time"

// Rating is one entry in the append-only rating ledger an employer leaves
// for a worker after an accepted engagement. Ratings are never mutated or
// deleted once created.
type Rating struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"user_id" gorm:"type:varchar(36);not null;index"` // the rated worker
	JobID        string    `json:"job_id" gorm:"type:varchar(36);not null"`
	JobTitle     string    `json:"job_title" gorm:"type:varchar(200);not null"`
	Rating       int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment      string    `json:"comment" gorm:"type:text"`
	Date         string    `json:"date" gorm:"type:varchar(10);not null"`
	FromEmployer string    `json:"from_employer" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}

// RatingCreate represents the request structure for rating completed work
type RatingCreate struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
