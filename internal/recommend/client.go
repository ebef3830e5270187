package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kamranshamim45/ai-job-portal/internal/config"
)

// Recommendation is one ranked job returned by the recommendation service.
// SimilarityScore is a percentage in [0, 100].
type Recommendation struct {
	JobID           string   `json:"job_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SkillsRequired  []string `json:"skills_required"`
	Location        string   `json:"location"`
	Salary          float64  `json:"salary"`
	SimilarityScore float64  `json:"similarity_score"`
}

// Recommender ranks jobs against a candidate's skills.
type Recommender interface {
	Recommend(ctx context.Context, skills []string) ([]Recommendation, error)
}

// Client calls the external recommendation HTTP service. The ranking model
// is a black box; the client only speaks its request/response contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.RecommenderConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type recommendRequest struct {
	Skills []string `json:"skills"`
}

type recommendResponse struct {
	Success         bool             `json:"success"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalJobs       int              `json:"total_jobs"`
	Error           string           `json:"error"`
}

func (c *Client) Recommend(ctx context.Context, skills []string) ([]Recommendation, error) {
	body, err := json.Marshal(recommendRequest{Skills: skills})
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommend request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/recommend", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build recommend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var out recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode recommend response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("recommendation service error: %s", out.Error)
		}
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	return out.Recommendations, nil
}
