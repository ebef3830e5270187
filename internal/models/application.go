package models

import (
	"time"

	"gorm.io/datatypes"
)

// Application links a candidate to a job. The composite unique index makes
// the one-application-per-pair rule a store constraint rather than a
// read-then-write check in the handler.
type Application struct {
	BaseModel
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job" json:"applicant_id"`
	Applicant   *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applicant_job;index" json:"job_id"`
	Job         *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	AppliedOn   time.Time         `gorm:"default:now()" json:"applied_on"`
	Resume      datatypes.JSON    `gorm:"type:jsonb" json:"resume"` // {"url": "...", "file_name": "..."} snapshot at apply time
	CoverLetter string            `json:"cover_letter,omitempty"`
}
