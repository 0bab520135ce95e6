package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/azroofops/backend/internal/models"
)

type HTTPAdapter struct {
	BaseURL string
	Client  *http.Client
}

type requestBody struct {
	Jobs []models.Job `json:"jobs"`
	Reps []models.Rep `json:"reps"`
}

type responseBody struct {
	Suggestions []Suggestion `json:"suggestions"`
}

func (h HTTPAdapter) SuggestAssignments(ctx context.Context, jobs []models.Job, reps []models.Rep) ([]Suggestion, int64, error) {
	if h.Client == nil {
		h.Client = &http.Client{Timeout: 15 * time.Second}
	}

	b, _ := json.Marshal(requestBody{Jobs: jobs, Reps: reps})
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/suggest", bytes.NewBuffer(b))
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, time.Since(start).Milliseconds(), err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, time.Since(start).Milliseconds(), errors.New("assignment service error")
	}

	var r responseBody
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, time.Since(start).Milliseconds(), err
	}
	return r.Suggestions, time.Since(start).Milliseconds(), nil
}
