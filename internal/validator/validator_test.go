package validator

import (
	"testing"

	"github.com/kamranshamim45/ai-job-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string                   `json:"email" validate:"required,email"`
	Name   string                   `json:"name" validate:"required,min=2"`
	Role   models.UserRole          `json:"role" validate:"omitempty,is-user-role"`
	Status models.ApplicationStatus `json:"status" validate:"omitempty,is-application-status"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		err := v.Validate(sampleRequest{
			Email:  "alice@example.com",
			Name:   "Alice",
			Role:   models.UserRoleCandidate,
			Status: models.ApplicationStatusShortlisted,
		})
		assert.NoError(t, err)
	})

	t.Run("errors keyed by json tag", func(t *testing.T) {
		err := v.Validate(sampleRequest{Email: "not-an-email"})
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "email")
		assert.Contains(t, vErr.Errors, "name")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		err := v.Validate(sampleRequest{
			Email: "a@x.com", Name: "Alice", Role: models.UserRole("superuser"),
		})
		require.Error(t, err)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "role")
	})

	t.Run("unknown application status rejected", func(t *testing.T) {
		err := v.Validate(sampleRequest{
			Email: "a@x.com", Name: "Alice", Status: models.ApplicationStatus("archived"),
		})
		require.Error(t, err)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "status")
	})

	t.Run("empty optional enums pass", func(t *testing.T) {
		err := v.Validate(sampleRequest{Email: "a@x.com", Name: "Alice"})
		assert.NoError(t, err)
	})
}

func TestValidator_JobStatusRule(t *testing.T) {
	v := New()

	type statusReq struct {
		Status models.JobStatus `json:"status" validate:"required,is-job-status"`
	}

	for _, status := range []models.JobStatus{
		models.JobStatusPending, models.JobStatusApproved, models.JobStatusActive,
		models.JobStatusRejected, models.JobStatusInactive, models.JobStatusClosed,
	} {
		assert.NoError(t, v.Validate(statusReq{Status: status}), "status %s", status)
	}

	assert.Error(t, v.Validate(statusReq{Status: models.JobStatus("draft")}))
}
