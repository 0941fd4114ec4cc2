package model

import (
	"time"

	"github.com/google/uuid"
)

// Resume is gorm model for store uploaded resume data in DB.
// Records are append-only: a student may accumulate several resumes and
// none of them is ever updated or deleted. Score and feedback are written
// once at upload time by the evaluation stub.
type Resume struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"student"`

	FileID int  `gorm:"<-:create" json:"file_id"`
	File   File `gorm:"foreignKey:FileID;references:ID" json:"-"`

	ResumeScore int       `gorm:"not null;<-:create" json:"resume_score"`
	Feedback    string    `gorm:"type:text;<-:create" json:"feedback"`
	UploadedAt  time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"uploaded_at"`
}
