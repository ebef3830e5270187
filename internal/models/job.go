package models

import "github.com/lib/pq"

// Job is a recruiter-authored posting with a moderation status. RecruiterID
// is set at creation and never updated afterwards.
type Job struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	SkillsRequired pq.StringArray `gorm:"type:text[]" json:"skills_required"`
	Location       string         `gorm:"not null;index" json:"location"`
	Salary         float64        `gorm:"not null;check:salary >= 0" json:"salary"`
	Company        string         `gorm:"not null" json:"company"`
	RecruiterID    string         `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Recruiter      *User          `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	Status         JobStatus      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}
