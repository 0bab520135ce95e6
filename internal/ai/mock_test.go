package ai

import (
	"context"
	"testing"

	"github.com/azroofops/backend/internal/models"
)

func TestMockAdapterDeterministic(t *testing.T) {
	adapter := MockAdapter{ModelVersion: "mock-v1"}
	jobs := []models.Job{
		{ID: "job-1", OriginalTimeframe: "7:30am - 10am"},
		{ID: "job-2"},
	}
	reps := []models.Rep{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}

	first, _, err := adapter.SuggestAssignments(context.Background(), jobs, reps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := adapter.SuggestAssignments(context.Background(), jobs, reps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 suggestions, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("suggestion %d not deterministic: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].SlotID != "ts-1" {
		t.Fatalf("timeframe should drive the slot, got %s", first[0].SlotID)
	}
	if first[1].SlotID == "" {
		t.Fatal("jobs without a timeframe still get a slot")
	}
}

func TestMockAdapterNoReps(t *testing.T) {
	adapter := MockAdapter{}
	out, _, err := adapter.SuggestAssignments(context.Background(), []models.Job{{ID: "j1"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected no suggestions without reps, got %+v", out)
	}
}
