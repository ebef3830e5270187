package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := StoreError(cause)

	assert.Equal(t, CodeDatabaseError, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	appErr := StoreError(cause)

	body, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "pq:")
	assert.NotContains(t, string(body), "HTTPCode")
	assert.Contains(t, string(body), "Internal server error")
}

func TestAppError_Details(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})

	body, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"email"`)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		appErr, ok := AsAppError(ErrAlreadyApplied)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, appErr.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsAppError(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestPredefinedErrors_HTTPCodes(t *testing.T) {
	cases := map[*AppError]int{
		ErrInvalidCredentials: http.StatusUnauthorized,
		ErrEmailAlreadyExists: http.StatusConflict,
		ErrAlreadyApplied:     http.StatusConflict,
		ErrNotJobOwner:        http.StatusForbidden,
		ErrCannotDeleteAdmin:  http.StatusForbidden,
		ErrFileTooLarge:       http.StatusRequestEntityTooLarge,
		ErrInvalidFileType:    http.StatusUnsupportedMediaType,
	}
	for appErr, want := range cases {
		assert.Equal(t, want, appErr.HTTPCode, appErr.Message)
	}
}
