package dto

import (
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
)

type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=200"`
	Description    string   `json:"description" validate:"required,max=10000"`
	SkillsRequired []string `json:"skills_required" validate:"required,min=1,dive,min=1,max=64"`
	Location       string   `json:"location" validate:"required,max=200"`
	Salary         float64  `json:"salary" validate:"gte=0"`
	Company        string   `json:"company" validate:"required,max=200"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	SkillsRequired []string `json:"skills_required,omitempty" validate:"omitempty,min=1,dive,min=1,max=64"`
	Location       *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	Salary         *float64 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Company        *string  `json:"company,omitempty" validate:"omitempty,max=200"`
}

type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,is-job-status"`
}

type JobListQuery struct {
	Location string `form:"location" validate:"omitempty,max=200"`
	Skills   string `form:"skills" validate:"omitempty,max=1000"` // comma separated
	Page     int    `form:"page" validate:"omitempty,gte=1"`
	Limit    int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

type JobResponse struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	SkillsRequired []string         `json:"skills_required"`
	Location       string           `json:"location"`
	Salary         float64          `json:"salary"`
	Company        string           `json:"company"`
	RecruiterID    string           `json:"recruiter_id"`
	RecruiterName  string           `json:"recruiter_name,omitempty"`
	Status         models.JobStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewJobResponse(j *models.Job) JobResponse {
	skills := []string(j.SkillsRequired)
	if skills == nil {
		skills = []string{}
	}
	resp := JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		SkillsRequired: skills,
		Location:       j.Location,
		Salary:         j.Salary,
		Company:        j.Company,
		RecruiterID:    j.RecruiterID,
		Status:         j.Status,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.Recruiter != nil {
		resp.RecruiterName = j.Recruiter.Name
	}
	return resp
}

func NewJobResponses(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// JobWithApplicantsResponse is the recruiter dashboard row: a posting plus
// how many candidates applied.
type JobWithApplicantsResponse struct {
	JobResponse
	ApplicationCount int64 `json:"application_count"`
}
