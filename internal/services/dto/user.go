package dto

import (
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
)

type UpdateProfileRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Skills     []string `json:"skills,omitempty" validate:"omitempty,dive,min=1,max=64"`
	Location   *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Education  *string  `json:"education,omitempty" validate:"omitempty,max=2000"`
	Experience *string  `json:"experience,omitempty" validate:"omitempty,max=5000"`

	// Recruiter company fields, ignored for candidates.
	CompanyName    *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	IndustryType   *string `json:"industry_type,omitempty" validate:"omitempty,max=100"`
	CompanyWebsite *string `json:"company_website,omitempty" validate:"omitempty,url"`
	CompanySize    *string `json:"company_size,omitempty" validate:"omitempty,max=50"`
	Headquarters   *string `json:"headquarters,omitempty" validate:"omitempty,max=200"`
	AboutCompany   *string `json:"about_company,omitempty" validate:"omitempty,max=5000"`
	ContactEmail   *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone   *string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
}

type ProfileResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	Skills         []string        `json:"skills"`
	ResumeURL      string          `json:"resume_url,omitempty"`
	ResumeFileName string          `json:"resume_file_name,omitempty"`
	ProfilePic     string          `json:"profile_pic,omitempty"`
	Location       string          `json:"location,omitempty"`
	Education      string          `json:"education,omitempty"`
	Experience     string          `json:"experience,omitempty"`

	CompanyName    string `json:"company_name,omitempty"`
	CompanyLogo    string `json:"company_logo,omitempty"`
	IndustryType   string `json:"industry_type,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`
	CompanySize    string `json:"company_size,omitempty"`
	Headquarters   string `json:"headquarters,omitempty"`
	AboutCompany   string `json:"about_company,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileResponse(u *models.User) ProfileResponse {
	skills := []string(u.Skills)
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Skills:         skills,
		ResumeURL:      u.ResumeURL,
		ResumeFileName: u.ResumeFileName,
		ProfilePic:     u.ProfilePic,
		Location:       u.Location,
		Education:      u.Education,
		Experience:     u.Experience,
		CompanyName:    u.CompanyName,
		CompanyLogo:    u.CompanyLogo,
		IndustryType:   u.IndustryType,
		CompanyWebsite: u.CompanyWebsite,
		CompanySize:    u.CompanySize,
		Headquarters:   u.Headquarters,
		AboutCompany:   u.AboutCompany,
		ContactEmail:   u.ContactEmail,
		ContactPhone:   u.ContactPhone,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}
