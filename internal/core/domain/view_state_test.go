package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInitialViewState(t *testing.T) {
	st := InitialViewState()

	assert.False(t, st.Loading)
	assert.False(t, st.HasArtworks)
	assert.Nil(t, st.Artworks)
	assert.Empty(t, st.Error)
}

func TestReduce_FetchStarted(t *testing.T) {
	id := uuid.New()
	prev := ViewState{
		Artworks:    []Artwork{{Title: "old"}},
		HasArtworks: true,
		Error:       "previous failure",
	}

	next := Reduce(prev, FetchStarted{ID: id})

	assert.True(t, next.Loading)
	assert.Empty(t, next.Error)
	assert.Equal(t, id, next.FetchID)
	assert.True(t, next.HasArtworks, "artworks are kept while loading")
	assert.False(t, prev.Loading, "input state is not modified")
}

func TestReduce_FetchSucceeded(t *testing.T) {
	id := uuid.New()
	loading := Reduce(InitialViewState(), FetchStarted{ID: id})

	artworks := []Artwork{{ImageID: strPtr("123"), Title: "T", ArtistDisplay: "A", DateDisplay: "D"}}
	next := Reduce(loading, FetchCompleted{ID: id, Result: Succeeded(artworks)})

	assert.False(t, next.Loading)
	assert.True(t, next.HasArtworks)
	require.Len(t, next.Artworks, 1)
	assert.Equal(t, "T", next.Artworks[0].Title)
}

func TestReduce_EmptyVersusAbsent(t *testing.T) {
	tests := []struct {
		name        string
		artworks    []Artwork
		hasArtworks bool
	}{
		{name: "empty data array", artworks: []Artwork{}, hasArtworks: true},
		{name: "missing data array", artworks: nil, hasArtworks: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			st := Reduce(InitialViewState(), FetchStarted{ID: id})
			st = Reduce(st, FetchCompleted{ID: id, Result: Succeeded(tt.artworks)})

			assert.False(t, st.Loading)
			assert.Equal(t, tt.hasArtworks, st.HasArtworks)
			assert.Empty(t, st.Artworks)
		})
	}
}

func TestReduce_FetchFailed(t *testing.T) {
	id := uuid.New()
	prev := ViewState{Artworks: []Artwork{{Title: "kept"}}, HasArtworks: true}
	st := Reduce(prev, FetchStarted{ID: id})

	next := Reduce(st, FetchCompleted{ID: id, Result: Failed(errors.New("boom"))})

	assert.False(t, next.Loading, "failure resolves loading")
	assert.Equal(t, "boom", next.Error)
	assert.True(t, next.HasArtworks)
	assert.Equal(t, "kept", next.Artworks[0].Title)
}

func TestReduce_StaleCompletionIgnored(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	st := Reduce(InitialViewState(), FetchStarted{ID: first})
	st = Reduce(st, FetchStarted{ID: second})

	next := Reduce(st, FetchCompleted{ID: first, Result: Succeeded([]Artwork{{Title: "stale"}})})

	assert.Equal(t, st, next)
	assert.True(t, next.Loading)
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		imageID *string
		want    string
	}{
		{
			name:    "default base",
			imageID: strPtr("123"),
			want:    "https://www.artic.edu/iiif/2/123/full/843,/0/default.jpg",
		},
		{
			name:    "custom base",
			base:    "http://iiif.local/2",
			imageID: strPtr("abc"),
			want:    "http://iiif.local/2/abc/full/843,/0/default.jpg",
		},
		{
			name: "missing image id",
			want: "https://www.artic.edu/iiif/2//full/843,/0/default.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Artwork{ImageID: tt.imageID}.ImageURL(tt.base))
		})
	}
}

func TestNewFetchRecord(t *testing.T) {
	id := uuid.New()
	start := time.Date(2024, 11, 6, 9, 22, 25, 0, time.UTC)
	end := start.Add(250 * time.Millisecond)

	t.Run("success", func(t *testing.T) {
		rec := NewFetchRecord(id, start, end, Succeeded([]Artwork{{}, {}}))
		assert.Equal(t, FetchOutcomeSuccess, rec.Outcome)
		assert.Equal(t, 2, rec.ArtworkCount)
		assert.Equal(t, 250*time.Millisecond, rec.Duration)
		assert.Empty(t, rec.Error)
	})

	t.Run("failure", func(t *testing.T) {
		rec := NewFetchRecord(id, start, end, Failed(ErrUpstreamStatus))
		assert.Equal(t, FetchOutcomeFailure, rec.Outcome)
		assert.Zero(t, rec.ArtworkCount)
		assert.Equal(t, ErrUpstreamStatus.Error(), rec.Error)
	})
}
