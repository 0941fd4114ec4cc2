package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleStudent marks users that browse approved jobs, apply, and upload resumes
	RoleStudent = "student"
	// RoleEmployer marks users that own job postings and their applications
	RoleEmployer = "employer"
	// RoleAdmin marks users that approve pending job postings
	RoleAdmin = "admin"
)

// User is gorm model for store account data in DB.
// Role is assigned at creation and there is no endpoint to change it afterwards.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email     *string   `gorm:"type:text;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null;default:student" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
