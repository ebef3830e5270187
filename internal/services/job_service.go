package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kamranshamim45/ai-job-portal/internal/email"
	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/recommend"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"
	"github.com/kamranshamim45/ai-job-portal/ws"

	"github.com/lib/pq"
)

// publicJobStatuses are the statuses visible in candidate-facing listings.
var publicJobStatuses = []models.JobStatus{
	models.JobStatusApproved,
	models.JobStatusActive,
}

// JobService owns the posting lifecycle: creation, moderation, recruiter
// edits and the public listing.
type JobService struct {
	jobRepo     repositories.JobRepository
	userRepo    repositories.UserRepository
	hub         *ws.Hub
	mailer      email.Provider
	recommender recommend.Recommender
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	hub *ws.Hub,
	mailer email.Provider,
	recommender recommend.Recommender,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		hub:         hub,
		mailer:      mailer,
		recommender: recommender,
	}
}

// Create stores a new posting owned by the acting recruiter. Recruiter
// postings start pending moderation; admin postings skip the queue and go
// straight to approved.
func (s *JobService) Create(ctx context.Context, actorID string, actorRole models.UserRole, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := models.JobStatusPending
	if actorRole == models.UserRoleAdmin {
		status = models.JobStatusApproved
	}

	job := &models.Job{
		Title:          req.Title,
		Description:    req.Description,
		SkillsRequired: pq.StringArray(req.SkillsRequired),
		Location:       req.Location,
		Salary:         req.Salary,
		Company:        req.Company,
		RecruiterID:    actorID,
		Status:         status,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "status", job.Status)

	s.hub.Publish(ws.NewEvent(ws.EventJobPosted, "New job posted: "+job.Title, map[string]string{
		"job_id":  job.ID,
		"title":   job.Title,
		"company": job.Company,
	}))

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// List serves the public browse endpoint. Only approved or active postings
// are visible regardless of filters.
func (s *JobService) List(ctx context.Context, query dto.JobListQuery) (*dto.JobListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	filter := repositories.JobFilter{
		Location: query.Location,
		Statuses: publicJobStatuses,
		Page:     page,
		Limit:    limit,
	}
	if query.Skills != "" {
		filter.Skills = strings.Split(query.Skills, ",")
	}

	jobs, total, err := s.jobRepo.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.JobListResponse{
		Jobs:  dto.NewJobResponses(jobs),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Get returns one posting. Anonymous and candidate callers only see public
// statuses; the owning recruiter and admins see everything.
func (s *JobService) Get(ctx context.Context, actorID string, actorRole models.UserRole, jobID string) (*dto.JobResponse, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !jobPubliclyVisible(job.Status) && actorRole != models.UserRoleAdmin && job.RecruiterID != actorID {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Update applies recruiter edits to an owned posting. Ownership never
// changes, whoever edits.
func (s *JobService) Update(ctx context.Context, actorID string, actorRole models.UserRole, jobID string, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.RecruiterID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = pq.StringArray(req.SkillsRequired)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Company != nil {
		job.Company = *req.Company
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.StoreError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// UpdateStatus moves a posting through its lifecycle. Admins assign
// approved or rejected; the owning recruiter assigns approved or closed.
// The recruiter is notified when moderation moves their posting.
func (s *JobService) UpdateStatus(ctx context.Context, actorID string, actorRole models.UserRole, jobID string, status models.JobStatus) (*dto.JobResponse, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	switch {
	case actorRole == models.UserRoleAdmin:
		if !models.AdminJobStatuses[status] {
			return nil, apperrors.ErrInvalidStatus("job", "Admins may only approve or reject a job")
		}
	case job.RecruiterID == actorID:
		if !models.RecruiterJobStatuses[status] {
			return nil, apperrors.ErrInvalidStatus("job", "Recruiters may only approve or close their job")
		}
	default:
		return nil, apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	job.Status = status

	logger.CtxInfo(ctx, "job status updated", "job_id", jobID, "status", status, "actor_role", actorRole)

	if actorID != job.RecruiterID {
		s.notifyJobStatus(job)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Delete removes the posting and every application on it.
func (s *JobService) Delete(ctx context.Context, actorID string, actorRole models.UserRole, jobID string) error {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return err
	}

	if job.RecruiterID != actorID && actorRole != models.UserRoleAdmin {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.DeleteCascade(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", jobID)
	return nil
}

// ListByRecruiter is the recruiter dashboard: own postings with applicant
// counts, any status.
func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID string) ([]dto.JobWithApplicantsResponse, error) {
	counts, err := s.jobRepo.FindByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]dto.JobWithApplicantsResponse, 0, len(counts))
	for i := range counts {
		out = append(out, dto.JobWithApplicantsResponse{
			JobResponse:      dto.NewJobResponse(&counts[i].Job),
			ApplicationCount: counts[i].ApplicationCount,
		})
	}
	return out, nil
}

// Recommendations ranks jobs against the candidate's profile skills via the
// external recommendation service.
func (s *JobService) Recommendations(ctx context.Context, userID string) ([]recommend.Recommendation, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	if len(user.Skills) == 0 {
		return []recommend.Recommendation{}, nil
	}

	recs, err := s.recommender.Recommend(ctx, user.Skills)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, "recommender")
	}
	return recs, nil
}

func (s *JobService) findJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	return job, nil
}

func jobPubliclyVisible(status models.JobStatus) bool {
	for _, s := range publicJobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// notifyJobStatus pushes the status change to the recruiter's channel and
// mails them. Delivery is best effort and never blocks the request.
func (s *JobService) notifyJobStatus(job *models.Job) {
	s.hub.PublishTo(job.RecruiterID, ws.NewEvent(
		ws.EventJobStatusUpdate,
		"Your job '"+job.Title+"' is now "+string(job.Status),
		map[string]string{
			"job_id": job.ID,
			"status": string(job.Status),
		},
	))

	go func() {
		recruiter, err := s.userRepo.FindByID(context.Background(), job.RecruiterID)
		if err != nil {
			logger.Warn("job status email skipped, recruiter lookup failed", "job_id", job.ID, "error", err)
			return
		}

		body, err := email.JobStatusBody(recruiter.Name, job.Title, string(job.Status))
		if err != nil {
			logger.Warn("job status email skipped", "error", err)
			return
		}
		if err := s.mailer.Send(recruiter.Email, "Job posting update: "+job.Title, body); err != nil {
			logger.Warn("job status email failed", "job_id", job.ID, "error", err)
		}
	}()
}
