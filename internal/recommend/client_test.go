package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kamranshamim45/ai-job-portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Recommend(t *testing.T) {
	var gotBody recommendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/recommend", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(recommendResponse{
			Success: true,
			Recommendations: []Recommendation{
				{JobID: "1", Title: "Backend Developer", SimilarityScore: 91.3},
				{JobID: "2", Title: "Data Engineer", SimilarityScore: 44.0},
			},
			TotalJobs: 8,
		})
	}))
	defer server.Close()

	client := NewClient(config.RecommenderConfig{BaseURL: server.URL, TimeoutSeconds: 2})

	recs, err := client.Recommend(context.Background(), []string{"Go", "SQL"})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"Go", "SQL"}, gotBody.Skills)
	assert.Equal(t, "Backend Developer", recs[0].Title)
	assert.InDelta(t, 91.3, recs[0].SimilarityScore, 0.001)
}

func TestClient_Recommend_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Skills are required"})
	}))
	defer server.Close()

	client := NewClient(config.RecommenderConfig{BaseURL: server.URL})

	_, err := client.Recommend(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Skills are required")
}

func TestClient_Recommend_Unreachable(t *testing.T) {
	client := NewClient(config.RecommenderConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1})

	_, err := client.Recommend(context.Background(), []string{"Go"})
	assert.Error(t, err)
}
