package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/kamranshamim45/ai-job-portal/internal/email"
	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"
	"github.com/kamranshamim45/ai-job-portal/ws"

	"gorm.io/datatypes"
)

// ApplicationService handles the candidate/recruiter application flow.
type ApplicationService struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	hub      *ws.Hub
	mailer   email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	hub *ws.Hub,
	mailer email.Provider,
) *ApplicationService {
	return &ApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		hub:      hub,
		mailer:   mailer,
	}
}

// Apply submits the candidate's application to an open posting. The resume
// on the profile at this moment is snapshotted onto the application. A
// second application to the same job is rejected, including under
// concurrent submits, since the store enforces the pair uniqueness.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, jobID string, req dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if !jobPubliclyVisible(job.Status) {
		return nil, apperrors.ErrInvalidStatus("application", "This job is not accepting applications")
	}
	if job.RecruiterID == applicantID {
		return nil, apperrors.NewBadRequestError("Cannot apply to your own job")
	}

	applicant, err := s.userRepo.FindByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	app := &models.Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: req.CoverLetter,
	}

	if applicant.ResumeURL != "" {
		snapshot, err := json.Marshal(dto.ResumeSnapshot{
			URL:      applicant.ResumeURL,
			FileName: applicant.ResumeFileName,
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		app.Resume = datatypes.JSON(snapshot)
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "job_id", jobID)

	s.hub.PublishTo(job.RecruiterID, ws.NewEvent(
		ws.EventNewApplication,
		applicant.Name+" applied for "+job.Title,
		map[string]string{
			"application_id": app.ID,
			"job_id":         jobID,
			"applicant_name": applicant.Name,
		},
	))

	app.Job = job
	app.Applicant = applicant
	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// ListMine returns the candidate's applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, applicantID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}

// ListForJob returns the applications on one posting, visible only to the
// owning recruiter or an admin.
func (s *ApplicationService) ListForJob(ctx context.Context, actorID string, actorRole models.UserRole, jobID string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	if job.RecruiterID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotJobOwner
	}

	apps, err := s.appRepo.FindByRecruiter(ctx, job.RecruiterID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	onJob := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.JobID == jobID {
			onJob = append(onJob, app)
		}
	}
	return dto.NewApplicationResponses(onJob), nil
}

// ListForRecruiter returns every application across the recruiter's
// postings.
func (s *ApplicationService) ListForRecruiter(ctx context.Context, recruiterID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}

// UpdateStatus moves an application within the fixed status set. Only the
// recruiter owning the posting (or an admin) may move it; the candidate is
// notified of the change.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actorID string, actorRole models.UserRole, applicationID string, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidStatus("application", "Unknown application status")
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if actorRole != models.UserRoleAdmin {
		if app.Job == nil || app.Job.RecruiterID != actorID {
			return nil, apperrors.ErrNotApplicationOwner
		}
	}

	if err := s.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	app.Status = status

	logger.CtxInfo(ctx, "application status updated", "application_id", applicationID, "status", status)

	s.notifyApplicationStatus(app)

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// Get returns one application to the applicant, the posting's recruiter or
// an admin.
func (s *ApplicationService) Get(ctx context.Context, actorID string, actorRole models.UserRole, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	allowed := app.ApplicantID == actorID ||
		actorRole == models.UserRoleAdmin ||
		(app.Job != nil && app.Job.RecruiterID == actorID)
	if !allowed {
		return nil, apperrors.ErrNotApplicationOwner
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

func (s *ApplicationService) notifyApplicationStatus(app *models.Application) {
	jobTitle := ""
	company := ""
	if app.Job != nil {
		jobTitle = app.Job.Title
		company = app.Job.Company
	}

	s.hub.PublishTo(app.ApplicantID, ws.NewEvent(
		ws.EventApplicationStatus,
		"Your application for "+jobTitle+" is now "+string(app.Status),
		map[string]string{
			"application_id": app.ID,
			"job_id":         app.JobID,
			"status":         string(app.Status),
		},
	))

	go func() {
		applicant := app.Applicant
		if applicant == nil {
			var err error
			applicant, err = s.userRepo.FindByID(context.Background(), app.ApplicantID)
			if err != nil {
				logger.Warn("application status email skipped, applicant lookup failed", "application_id", app.ID, "error", err)
				return
			}
		}

		body, err := email.ApplicationStatusBody(applicant.Name, jobTitle, company, string(app.Status))
		if err != nil {
			logger.Warn("application status email skipped", "error", err)
			return
		}
		if err := s.mailer.Send(applicant.Email, "Application update: "+jobTitle, body); err != nil {
			logger.Warn("application status email failed", "application_id", app.ID, "error", err)
		}
	}()
}
