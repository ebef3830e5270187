package dto

import (
	"encoding/json"
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// ResumeSnapshot is the copy of the applicant's resume captured at apply
// time. Later profile edits do not touch it.
type ResumeSnapshot struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	ApplicantID string                   `json:"applicant_id"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedOn   time.Time                `json:"applied_on"`
	Resume      *ResumeSnapshot          `json:"resume,omitempty"`
	CoverLetter string                   `json:"cover_letter,omitempty"`

	Job       *JobResponse       `json:"job,omitempty"`
	Applicant *ApplicantResponse `json:"applicant,omitempty"`
}

// ApplicantResponse is the candidate view a recruiter sees on an
// application. It excludes account internals.
type ApplicantResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Skills   []string `json:"skills"`
	Location string   `json:"location,omitempty"`
}

func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		AppliedOn:   a.AppliedOn,
		CoverLetter: a.CoverLetter,
	}

	if len(a.Resume) > 0 {
		var snapshot ResumeSnapshot
		if err := json.Unmarshal(a.Resume, &snapshot); err == nil {
			resp.Resume = &snapshot
		}
	}

	if a.Job != nil {
		job := NewJobResponse(a.Job)
		resp.Job = &job
	}
	if a.Applicant != nil {
		skills := []string(a.Applicant.Skills)
		if skills == nil {
			skills = []string{}
		}
		resp.Applicant = &ApplicantResponse{
			ID:       a.Applicant.ID,
			Name:     a.Applicant.Name,
			Email:    a.Applicant.Email,
			Skills:   skills,
			Location: a.Applicant.Location,
		}
	}
	return resp
}

func NewApplicationResponses(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
