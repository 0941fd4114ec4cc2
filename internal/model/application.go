package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application is awaiting employer review
	ApplicationStatusPending = "pending"
	// ApplicationStatusAccepted indicates that the employer accepted the application
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the employer rejected the application
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a status an employer may set.
func ValidApplicationStatus(s string) bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application represents a student applying to a job posting.
// The composite unique index on (job_id, student_id) is the store-level
// guarantee that a student applies to a job at most once, also under
// concurrent requests.
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`

	JobID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_student;<-:create" json:"job_id"`
	Job   Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"job"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_student;<-:create" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"student"`

	Status     string    `gorm:"type:text;not null;default:pending" json:"status"`
	MatchScore int       `gorm:"not null;<-:create" json:"match_score"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
