package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Fetch Log
// ============================================================================

type FetchOutcome string

const (
	FetchOutcomeSuccess FetchOutcome = "SUCCESS"
	FetchOutcomeFailure FetchOutcome = "FAILURE"
)

// FetchRecord is one completed fetch as kept in the fetch log. The log holds
// outcomes only; artworks themselves are never stored.
type FetchRecord struct {
	ID           uuid.UUID     `json:"id"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	Outcome      FetchOutcome  `json:"outcome"`
	ArtworkCount int           `json:"artwork_count"`
	Error        string        `json:"error,omitempty"`
}

// NewFetchRecord builds the log entry for a finished fetch.
func NewFetchRecord(id uuid.UUID, startedAt, finishedAt time.Time, result FetchResult) *FetchRecord {
	rec := &FetchRecord{
		ID:        id,
		StartedAt: startedAt,
		Duration:  finishedAt.Sub(startedAt),
		Outcome:   FetchOutcomeSuccess,
	}
	if !result.OK() {
		rec.Outcome = FetchOutcomeFailure
		rec.Error = result.Err.Error()
		return rec
	}
	rec.ArtworkCount = len(result.Artworks)
	return rec
}
