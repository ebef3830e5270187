package models

import "github.com/lib/pq"

// User is a registered account: candidate, recruiter or admin. Company
// fields are only meaningful for recruiters.
type User struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'candidate'" json:"role"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills"`

	ResumeURL      string `json:"resume_url,omitempty"`
	ResumeFileName string `json:"resume_file_name,omitempty"`
	ProfilePic     string `json:"profile_pic,omitempty"`
	Location       string `json:"location,omitempty"`
	Education      string `json:"education,omitempty"`
	Experience     string `json:"experience,omitempty"`

	// Recruiter company details
	CompanyName    string `json:"company_name,omitempty"`
	CompanyLogo    string `json:"company_logo,omitempty"`
	IndustryType   string `json:"industry_type,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	CompanySize    string `json:"company_size,omitempty"`
	Headquarters   string `json:"headquarters,omitempty"`
	AboutCompany   string `json:"about_company,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
}
