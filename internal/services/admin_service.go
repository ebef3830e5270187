package services

import (
	"context"
	"errors"

	"github.com/kamranshamim45/ai-job-portal/internal/logger"
	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/internal/repositories"
	"github.com/kamranshamim45/ai-job-portal/internal/services/dto"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"
	"github.com/kamranshamim45/ai-job-portal/ws"
)

// AdminService backs the moderation dashboard.
type AdminService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
	hub      *ws.Hub
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	hub *ws.Hub,
) *AdminService {
	return &AdminService{userRepo: userRepo, jobRepo: jobRepo, appRepo: appRepo, hub: hub}
}

func (s *AdminService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	usersByRole, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	totalJobs, err := s.jobRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	jobsByStatus, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	totalApps, err := s.appRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	roleCounts := make(map[models.UserRole]int64, len(usersByRole))
	for role, n := range usersByRole {
		roleCounts[models.UserRole(role)] = n
	}
	statusCounts := make(map[models.JobStatus]int64, len(jobsByStatus))
	for status, n := range jobsByStatus {
		statusCounts[models.JobStatus(status)] = n
	}

	return &dto.OverviewResponse{
		TotalUsers:        totalUsers,
		UsersByRole:       roleCounts,
		TotalJobs:         totalJobs,
		JobsByStatus:      statusCounts,
		TotalApplications: totalApps,
		ConnectedClients:  s.hub.ClientCount(),
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewProfileResponse(&users[i]))
	}
	return &dto.UserListResponse{Users: out, Total: int64(len(out))}, nil
}

// DeleteUser removes an account and everything hanging off it. Admin
// accounts cannot be deleted, not even by another admin.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	if user.Role == models.UserRoleAdmin {
		return apperrors.ErrCannotDeleteAdmin
	}

	if err := s.userRepo.DeleteCascade(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	logger.CtxInfo(ctx, "user deleted", "deleted_user_id", userID, "role", user.Role)
	return nil
}

// ListJobs returns every posting regardless of status, for the moderation
// queue.
func (s *AdminService) ListJobs(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.NewJobResponses(jobs), nil
}

func (s *AdminService) ListApplications(ctx context.Context) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}
