// Package views turns gallery view state into page view models. Every function
// here is pure; the HTML itself lives in templates/.
package views

import (
	"strconv"

	"artwork-gallery/internal/core/domain"
)

const (
	PageTitle      = "Art Institute of Chicago Artworks"
	ButtonLabel    = "Fetch Artworks"
	LoadingMessage = "Loading..."
	EmptyMessage   = "No artworks have been fetched"
	ArtistLabel    = "Artist:"
	DateLabel      = "Date:"
)

// HeaderView is the page title and the fetch button.
type HeaderView struct {
	Title       string
	ButtonLabel string
	Disabled    bool
}

// Header renders the header for the given loading flag. The button is
// disabled exactly while loading.
func Header(loading bool) HeaderView {
	return HeaderView{
		Title:       PageTitle,
		ButtonLabel: ButtonLabel,
		Disabled:    loading,
	}
}

type Mode string

const (
	ModeLoading Mode = "loading"
	ModeList    Mode = "list"
	ModeEmpty   Mode = "empty"
)

// Card is one rendered artwork.
type Card struct {
	ImageURL    string
	Alt         string
	Title       string
	ArtistLabel string
	Artist      string
	DateLabel   string
	Date        string
}

// ResultsView is one of the loading placeholder, the artwork list or the
// empty placeholder, plus the last fetch error if any.
type ResultsView struct {
	Mode    Mode
	Message string
	Cards   []Card
	Error   string
}

// Results picks the rendering for the state. Loading wins over any artworks;
// a present but empty list still renders as a (empty) list.
func Results(state domain.ViewState, iiifBaseURL string) ResultsView {
	if state.Loading {
		return ResultsView{Mode: ModeLoading, Message: LoadingMessage}
	}

	if state.HasArtworks {
		cards := make([]Card, 0, len(state.Artworks))
		for _, a := range state.Artworks {
			cards = append(cards, NewCard(a, iiifBaseURL))
		}
		return ResultsView{Mode: ModeList, Cards: cards, Error: state.Error}
	}

	return ResultsView{Mode: ModeEmpty, Message: EmptyMessage, Error: state.Error}
}

func NewCard(a domain.Artwork, iiifBaseURL string) Card {
	return Card{
		ImageURL:    a.ImageURL(iiifBaseURL),
		Alt:         a.Title,
		Title:       a.Title,
		ArtistLabel: ArtistLabel,
		Artist:      a.ArtistDisplay,
		DateLabel:   DateLabel,
		Date:        a.DateDisplay,
	}
}

// Page is the full page view model. StateKey identifies the state it was
// rendered from, so the browser can tell whether a pushed state is new.
type Page struct {
	Header   HeaderView
	Results  ResultsView
	StateKey string
}

func Render(state domain.ViewState, iiifBaseURL string) Page {
	return Page{
		Header:   Header(state.Loading),
		Results:  Results(state, iiifBaseURL),
		StateKey: StateKey(state),
	}
}

// StateKey changes whenever a fetch starts or settles.
func StateKey(state domain.ViewState) string {
	return state.FetchID.String() + ":" + strconv.FormatBool(state.Loading)
}
