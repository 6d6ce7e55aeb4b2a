package domain

import (
	"github.com/google/uuid"
)

// ============================================================================
// View State
// ============================================================================

// ViewState is everything the gallery page renders from. A value is never
// mutated in place; Reduce returns the next one.
type ViewState struct {
	// Artworks is only meaningful when HasArtworks is true. A present but
	// empty list is distinct from no fetch having succeeded yet.
	Artworks    []Artwork `json:"artworks"`
	HasArtworks bool      `json:"has_artworks"`
	Loading     bool      `json:"loading"`

	// Error holds the message of the last failed fetch, cleared when the next
	// fetch starts.
	Error string `json:"error,omitempty"`

	// FetchID identifies the most recently started fetch.
	FetchID uuid.UUID `json:"fetch_id"`
}

// InitialViewState is the state at mount: nothing fetched, not loading.
func InitialViewState() ViewState {
	return ViewState{}
}

// ============================================================================
// Fetch Result
// ============================================================================

// FetchResult is the outcome of one fetch: exactly one of Artworks or Err is
// meaningful. Artworks may be nil on success when the response carried no
// "data" array.
type FetchResult struct {
	Artworks []Artwork
	Err      error
}

func Succeeded(artworks []Artwork) FetchResult {
	return FetchResult{Artworks: artworks}
}

func Failed(err error) FetchResult {
	return FetchResult{Err: err}
}

func (r FetchResult) OK() bool {
	return r.Err == nil
}

// ============================================================================
// Actions
// ============================================================================

// Action is a state transition consumed by Reduce.
type Action interface {
	fetchID() uuid.UUID
}

// FetchStarted marks the beginning of a fetch.
type FetchStarted struct {
	ID uuid.UUID
}

// FetchCompleted carries the result of the fetch identified by ID.
type FetchCompleted struct {
	ID     uuid.UUID
	Result FetchResult
}

func (a FetchStarted) fetchID() uuid.UUID   { return a.ID }
func (a FetchCompleted) fetchID() uuid.UUID { return a.ID }

// Reduce applies an action to a state and returns the next state. Completions
// for any fetch other than the most recently started one are ignored.
func Reduce(state ViewState, action Action) ViewState {
	switch a := action.(type) {
	case FetchStarted:
		next := state
		next.Loading = true
		next.Error = ""
		next.FetchID = a.ID
		return next

	case FetchCompleted:
		if a.ID != state.FetchID {
			return state
		}
		next := state
		next.Loading = false
		if !a.Result.OK() {
			next.Error = a.Result.Err.Error()
			return next
		}
		next.Error = ""
		next.Artworks = a.Result.Artworks
		next.HasArtworks = a.Result.Artworks != nil
		return next
	}
	return state
}
