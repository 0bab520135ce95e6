package models

import "time"

type Job struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customer_name"`
	Address           string    `json:"address"`
	City              string    `json:"city,omitempty"`
	ZipCode           string    `json:"zip_code,omitempty"`
	Notes             string    `json:"notes"`
	OriginalTimeframe string    `json:"original_timeframe,omitempty"`
	DateKey           string    `json:"date_key,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type Rep struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Assignment struct {
	JobID      string    `json:"job_id"`
	RepID      string    `json:"rep_id"`
	SlotID     string    `json:"slot_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DaySection is one calendar day's block of pasted schedule text.
type DaySection struct {
	DateKey string   `json:"date_key"`
	Lines   []string `json:"lines"`
}

// ParseResult is the contract consumed by the persistence/UI layer.
type ParseResult struct {
	DateKey     string       `json:"date_key,omitempty"`
	Jobs        []Job        `json:"jobs"`
	Assignments []Assignment `json:"assignments"`
}

// MatchResult links an address to a prior known external identifier.
// Score 1.0 is reserved for an exact variation match; fuzzy scores are
// always below it.
type MatchResult struct {
	Match string  `json:"match,omitempty"`
	Score float64 `json:"score"`
	Value string  `json:"value,omitempty"`
	Found bool    `json:"found"`
}

type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Status     string    `json:"status"`
	Summary    []byte    `json:"summary"`
}
