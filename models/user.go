package models

import "time"

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleEmployer UserRole = "employer"
)

type User struct {
	ID           string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string   `json:"name" gorm:"size:255;not null"`
	Email        string   `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'user';check:role IN ('user','employer')"`

	// Rating is the cached reputation score for workers. The rating ledger
	// is the source of truth; this copy is advisory and reconciled by the
	// background reputation job.
	Rating float64 `json:"rating" gorm:"type:decimal(3,1);default:0"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsValidRole checks if the user role is valid
func (u *User) IsValidRole() bool {
	switch u.Role {
	case RoleUser, RoleEmployer:
		return true
	default:
		return false
	}
}

// IsEmployer checks if the user is an employer
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsWorker checks if the user is a worker
func (u *User) IsWorker() bool {
	return u.Role == RoleUser
}
