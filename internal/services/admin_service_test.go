package services

import (
	"context"
	"testing"

	"github.com/kamranshamim45/ai-job-portal/internal/models"
	"github.com/kamranshamim45/ai-job-portal/pkg/apperrors"
	"github.com/kamranshamim45/ai-job-portal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServiceFixture(t *testing.T) (*AdminService, *fakeUserRepo, *fakeJobRepo, *fakeAppRepo) {
	t.Helper()

	hub := ws.NewHub()
	go hub.Run()

	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeAppRepo(jobRepo, userRepo)

	return NewAdminService(userRepo, jobRepo, appRepo, hub), userRepo, jobRepo, appRepo
}

func TestAdminService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a candidate", func(t *testing.T) {
		svc, userRepo, _, _ := newAdminServiceFixture(t)
		user := &models.User{Name: "Alice", Email: "a@example.com", PasswordHash: "x", Role: models.UserRoleCandidate}
		require.NoError(t, userRepo.Create(ctx, user))

		require.NoError(t, svc.DeleteUser(ctx, user.ID))
		_, err := userRepo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})

	t.Run("refuses to delete an admin", func(t *testing.T) {
		svc, userRepo, _, _ := newAdminServiceFixture(t)
		admin := &models.User{Name: "Root", Email: "root@example.com", PasswordHash: "x", Role: models.UserRoleAdmin}
		require.NoError(t, userRepo.Create(ctx, admin))

		err := svc.DeleteUser(ctx, admin.ID)
		assert.ErrorIs(t, err, apperrors.ErrCannotDeleteAdmin)

		_, findErr := userRepo.FindByID(ctx, admin.ID)
		assert.NoError(t, findErr)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		svc, _, _, _ := newAdminServiceFixture(t)

		err := svc.DeleteUser(ctx, "missing")
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}

func TestAdminService_Overview(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, jobRepo, appRepo := newAdminServiceFixture(t)

	require.NoError(t, userRepo.Create(ctx, &models.User{Name: "A", Email: "a@x.com", PasswordHash: "x", Role: models.UserRoleCandidate}))
	require.NoError(t, userRepo.Create(ctx, &models.User{Name: "B", Email: "b@x.com", PasswordHash: "x", Role: models.UserRoleRecruiter}))
	require.NoError(t, userRepo.Create(ctx, &models.User{Name: "C", Email: "c@x.com", PasswordHash: "x", Role: models.UserRoleAdmin}))

	job := &models.Job{Title: "J", Description: "d", Location: "l", Company: "c", RecruiterID: "r1", Status: models.JobStatusPending}
	require.NoError(t, jobRepo.Create(ctx, job))
	require.NoError(t, appRepo.Create(ctx, &models.Application{ApplicantID: "u1", JobID: job.ID, Status: models.ApplicationStatusApplied}))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalUsers)
	assert.Equal(t, int64(1), overview.UsersByRole[models.UserRoleAdmin])
	assert.Equal(t, int64(1), overview.TotalJobs)
	assert.Equal(t, int64(1), overview.JobsByStatus[models.JobStatusPending])
	assert.Equal(t, int64(1), overview.TotalApplications)
	assert.Equal(t, 0, overview.ConnectedClients)
}

func TestAdminService_ListJobs_AllStatuses(t *testing.T) {
	ctx := context.Background()
	svc, _, jobRepo, _ := newAdminServiceFixture(t)

	for _, status := range []models.JobStatus{models.JobStatusPending, models.JobStatusApproved, models.JobStatusRejected} {
		require.NoError(t, jobRepo.Create(ctx, &models.Job{
			Title: "J", Description: "d", Location: "l", Company: "c",
			RecruiterID: "r1", Status: status,
		}))
	}

	jobs, err := svc.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestAdminService_DeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a recruiter removes their jobs and the applications on them", func(t *testing.T) {
		svc, userRepo, jobRepo, appRepo := newAdminServiceFixture(t)
		recruiter := &models.User{Name: "Rita", Email: "r@example.com", PasswordHash: "x", Role: models.UserRoleRecruiter}
		require.NoError(t, userRepo.Create(ctx, recruiter))
		candidate := &models.User{Name: "Alice", Email: "a@example.com", PasswordHash: "x", Role: models.UserRoleCandidate}
		require.NoError(t, userRepo.Create(ctx, candidate))

		job := &models.Job{Title: "Backend Engineer", Description: "d", Company: "Acme", RecruiterID: recruiter.ID, Status: models.JobStatusApproved}
		require.NoError(t, jobRepo.Create(ctx, job))
		app := &models.Application{JobID: job.ID, ApplicantID: candidate.ID, Status: models.ApplicationStatusApplied}
		require.NoError(t, appRepo.Create(ctx, app))

		require.NoError(t, svc.DeleteUser(ctx, recruiter.ID))

		_, err := jobRepo.FindByID(ctx, job.ID)
		assert.Error(t, err)
		apps, err := appRepo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("deleting a candidate removes their applications but not the job", func(t *testing.T) {
		svc, userRepo, jobRepo, appRepo := newAdminServiceFixture(t)
		recruiter := &models.User{Name: "Rita", Email: "r@example.com", PasswordHash: "x", Role: models.UserRoleRecruiter}
		require.NoError(t, userRepo.Create(ctx, recruiter))
		candidate := &models.User{Name: "Alice", Email: "a@example.com", PasswordHash: "x", Role: models.UserRoleCandidate}
		require.NoError(t, userRepo.Create(ctx, candidate))

		job := &models.Job{Title: "Backend Engineer", Description: "d", Company: "Acme", RecruiterID: recruiter.ID, Status: models.JobStatusApproved}
		require.NoError(t, jobRepo.Create(ctx, job))
		app := &models.Application{JobID: job.ID, ApplicantID: candidate.ID, Status: models.ApplicationStatusApplied}
		require.NoError(t, appRepo.Create(ctx, app))

		require.NoError(t, svc.DeleteUser(ctx, candidate.ID))

		_, err := jobRepo.FindByID(ctx, job.ID)
		assert.NoError(t, err)
		apps, err := appRepo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}
