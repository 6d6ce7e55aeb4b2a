package dto

import (
	"time"

	"github.com/google/uuid"

	"artwork-gallery/internal/adapters/primary/http/views"
	"artwork-gallery/internal/core/domain"
)

// ============================================================================
// Response DTOs
// ============================================================================

// ArtworkResponse represents one artwork with its resolved image URL
type ArtworkResponse struct {
	ImageID       *string `json:"image_id"`
	ImageURL      string  `json:"image_url"`
	Title         string  `json:"title"`
	ArtistDisplay string  `json:"artist_display"`
	DateDisplay   string  `json:"date_display"`
}

// ViewStateResponse represents the gallery view state.
// Artworks is null until a fetch has succeeded, and [] for an empty page.
type ViewStateResponse struct {
	Loading  bool              `json:"loading"`
	Artworks []ArtworkResponse `json:"artworks"`
	Error    string            `json:"error,omitempty"`
	FetchID  *uuid.UUID        `json:"fetch_id,omitempty"`
	StateKey string            `json:"state_key"`
}

// FetchRecordResponse represents one fetch log entry
type FetchRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	DurationMS   int64     `json:"duration_ms"`
	Outcome      string    `json:"outcome"`
	ArtworkCount int       `json:"artwork_count"`
	Error        string    `json:"error,omitempty"`
}

// ListFetchRecordsResponse represents the fetch log listing
type ListFetchRecordsResponse struct {
	Items []FetchRecordResponse `json:"items"`
	Total int                   `json:"total"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToViewStateResponse(st domain.ViewState, iiifBaseURL string) ViewStateResponse {
	resp := ViewStateResponse{
		Loading:  st.Loading,
		Error:    st.Error,
		StateKey: views.StateKey(st),
	}
	if st.FetchID != uuid.Nil {
		id := st.FetchID
		resp.FetchID = &id
	}
	if st.HasArtworks {
		resp.Artworks = make([]ArtworkResponse, 0, len(st.Artworks))
		for _, a := range st.Artworks {
			resp.Artworks = append(resp.Artworks, ArtworkResponse{
				ImageID:       a.ImageID,
				ImageURL:      a.ImageURL(iiifBaseURL),
				Title:         a.Title,
				ArtistDisplay: a.ArtistDisplay,
				DateDisplay:   a.DateDisplay,
			})
		}
	}
	return resp
}

func ToFetchRecordResponse(rec *domain.FetchRecord) FetchRecordResponse {
	return FetchRecordResponse{
		ID:           rec.ID,
		StartedAt:    rec.StartedAt,
		DurationMS:   rec.Duration.Milliseconds(),
		Outcome:      string(rec.Outcome),
		ArtworkCount: rec.ArtworkCount,
		Error:        rec.Error,
	}
}
