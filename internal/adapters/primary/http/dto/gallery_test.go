package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artwork-gallery/internal/core/domain"
)

func TestToViewStateResponse_AbsentArtworks(t *testing.T) {
	resp := ToViewStateResponse(domain.InitialViewState(), "")

	assert.Nil(t, resp.Artworks)
	assert.Nil(t, resp.FetchID)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"artworks":null`)
}

func TestToViewStateResponse_EmptyArtworks(t *testing.T) {
	st := domain.ViewState{HasArtworks: true, Artworks: []domain.Artwork{}, FetchID: uuid.New()}

	resp := ToViewStateResponse(st, "")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"artworks":[]`)
	require.NotNil(t, resp.FetchID)
	assert.Equal(t, st.FetchID, *resp.FetchID)
}

func TestToViewStateResponse_ImageURL(t *testing.T) {
	id := "123"
	st := domain.ViewState{
		HasArtworks: true,
		Artworks:    []domain.Artwork{{ImageID: &id, Title: "T", ArtistDisplay: "A", DateDisplay: "D"}},
	}

	resp := ToViewStateResponse(st, "https://www.artic.edu/iiif/2")

	require.Len(t, resp.Artworks, 1)
	assert.Equal(t, "https://www.artic.edu/iiif/2/123/full/843,/0/default.jpg", resp.Artworks[0].ImageURL)
	assert.Equal(t, "T", resp.Artworks[0].Title)
}

func TestToFetchRecordResponse(t *testing.T) {
	rec := &domain.FetchRecord{
		ID:           uuid.New(),
		StartedAt:    time.Now(),
		Duration:     1500 * time.Millisecond,
		Outcome:      domain.FetchOutcomeFailure,
		ArtworkCount: 0,
		Error:        "artworks API unavailable",
	}

	resp := ToFetchRecordResponse(rec)

	assert.Equal(t, int64(1500), resp.DurationMS)
	assert.Equal(t, "FAILURE", resp.Outcome)
	assert.Equal(t, rec.Error, resp.Error)
}
