package dto

import "github.com/kamranshamim45/ai-job-portal/internal/models"

// OverviewResponse is the admin dashboard snapshot.
type OverviewResponse struct {
	TotalUsers        int64                      `json:"total_users"`
	UsersByRole       map[models.UserRole]int64  `json:"users_by_role"`
	TotalJobs         int64                      `json:"total_jobs"`
	JobsByStatus      map[models.JobStatus]int64 `json:"jobs_by_status"`
	TotalApplications int64                      `json:"total_applications"`
	ConnectedClients  int                        `json:"connected_clients"`
}

type UserListResponse struct {
	Users []ProfileResponse `json:"users"`
	Total int64             `json:"total"`
}
