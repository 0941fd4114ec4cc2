package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EditableJobInfo is part of job posting that the owning employer can edit
type EditableJobInfo struct {
	Title       string         `gorm:"type:text" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"type:text" json:"location"`
	Duration    string         `gorm:"type:text" json:"duration"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
}

// Job is gorm model for store job posting data in DB.
// Approved starts false and can only be flipped to true by an admin,
// never back. EmployerID is fixed at creation.
type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employer_id"`
	Employer   User      `gorm:"foreignKey:EmployerID;references:ID;constraint:OnDelete:CASCADE" json:"employer"`
	EditableJobInfo
	Approved  bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
