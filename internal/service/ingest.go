package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/azroofops/backend/internal/db"
	"github.com/azroofops/backend/internal/geo"
	"github.com/azroofops/backend/internal/models"
	"github.com/azroofops/backend/internal/schedule"
)

type IngestService struct {
	Store  *db.Store
	Parser *schedule.Parser
	Logger zerolog.Logger
}

type RunSummary struct {
	Events  []map[string]any `json:"events"`
	Counts  map[string]any   `json:"counts"`
	Samples []map[string]any `json:"samples,omitempty"`
}

// IngestSchedule parses pasted schedule text against the roster and
// persists the resulting jobs and pre-assignments. Per-line parse
// failures are not errors; they simply reduce the job count.
func (s *IngestService) IngestSchedule(ctx context.Context, text string, roster []models.Rep, debug bool) (RunSummary, error) {
	start := time.Now()
	summary := RunSummary{Counts: map[string]any{}}

	results := s.Parser.Parse(text, roster)
	summary.Events = append(summary.Events, map[string]any{
		"type":    "split",
		"message": "Day sections detected",
		"count":   len(results),
		"time":    time.Now().UTC(),
	})

	var (
		jobCount        int
		assignmentCount int
		regionCounts    = map[string]int{}
		allJobs         []models.Job
		allAssignments  []models.Assignment
	)
	for _, r := range results {
		jobCount += len(r.Jobs)
		assignmentCount += len(r.Assignments)
		allJobs = append(allJobs, r.Jobs...)
		allAssignments = append(allAssignments, r.Assignments...)
		for _, j := range r.Jobs {
			regionCounts[string(geo.RegionOf(j.City))]++
		}
		if debug && len(summary.Samples) < 5 && len(r.Jobs) > 0 {
			summary.Samples = append(summary.Samples, map[string]any{
				"date_key": r.DateKey,
				"job":      r.Jobs[0],
			})
		}
	}

	summary.Events = append(summary.Events, map[string]any{
		"type":        "parse",
		"message":     "Job extraction complete",
		"jobs":        jobCount,
		"assignments": assignmentCount,
		"regions":     regionCounts,
		"time":        time.Now().UTC(),
	})

	if len(allJobs) > 0 {
		if _, err := s.Store.InsertJobs(ctx, allJobs); err != nil {
			return summary, err
		}
	}
	if len(allAssignments) > 0 {
		err := s.Store.WithTx(ctx, func(tx pgx.Tx) error {
			for _, a := range allAssignments {
				if err := s.Store.UpsertAssignment(ctx, tx, a); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return summary, err
		}
	}

	summary.Events = append(summary.Events, map[string]any{
		"type":       "db_save",
		"message":    "Ingest saved",
		"elapsed_ms": time.Since(start).Milliseconds(),
		"time":       time.Now().UTC(),
	})

	summary.Counts["day_sections"] = len(results)
	summary.Counts["jobs"] = jobCount
	summary.Counts["assignments"] = assignmentCount
	summary.Counts["regions"] = regionCounts
	return summary, nil
}
