package ai

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/azroofops/backend/internal/models"
	"github.com/azroofops/backend/internal/timeslot"
)

// MockAdapter produces deterministic suggestions so the pipeline can be
// exercised without the external service.
type MockAdapter struct {
	ModelVersion string
}

func (m MockAdapter) SuggestAssignments(ctx context.Context, jobs []models.Job, reps []models.Rep) ([]Suggestion, int64, error) {
	start := time.Now()
	if len(reps) == 0 {
		return nil, time.Since(start).Milliseconds(), nil
	}

	out := make([]Suggestion, 0, len(jobs))
	for _, j := range jobs {
		h := hashStringToUint64(j.ID)
		rep := reps[int(h)%len(reps)]
		slotID := timeslot.Classify(j.OriginalTimeframe)
		if slotID == "" {
			slotID = timeslot.Slots[int(h/7)%len(timeslot.Slots)].ID
		}
		out = append(out, Suggestion{
			JobID:  j.ID,
			RepID:  rep.ID,
			SlotID: slotID,
			Reason: "mock round-robin (" + m.ModelVersion + ")",
		})
	}
	return out, time.Since(start).Milliseconds(), nil
}

func hashStringToUint64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
