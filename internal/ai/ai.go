package ai

import (
	"context"

	"github.com/azroofops/backend/internal/models"
)

// Suggestion is one proposed job/rep/slot pairing from the external
// assignment service.
type Suggestion struct {
	JobID  string `json:"job_id"`
	RepID  string `json:"rep_id"`
	SlotID string `json:"slot_id"`
	Reason string `json:"reason,omitempty"`
}

type Adapter interface {
	SuggestAssignments(ctx context.Context, jobs []models.Job, reps []models.Rep) ([]Suggestion, int64, error)
}
