package domain

import "fmt"

// ============================================================================
// Artwork
// ============================================================================

const (
	// DefaultArtworkLimit is the page size requested from the artworks API.
	DefaultArtworkLimit = 5

	// ImageWidth is the fixed IIIF width used for every rendered image.
	ImageWidth = 843

	DefaultIIIFBaseURL = "https://www.artic.edu/iiif/2"
)

// Artwork is one record of the artworks API "data" array. Only the fields the
// page renders are decoded; values are used as received.
type Artwork struct {
	ImageID       *string `json:"image_id"`
	Title         string  `json:"title"`
	ArtistDisplay string  `json:"artist_display"`
	DateDisplay   string  `json:"date_display"`
}

// ImageURL interpolates the artwork's image id into the IIIF image template.
// A missing image id is interpolated as an empty string.
func (a Artwork) ImageURL(iiifBaseURL string) string {
	return ImageURL(iiifBaseURL, a.ImageID)
}

// ImageURL builds {base}/{image_id}/full/843,/0/default.jpg.
func ImageURL(iiifBaseURL string, imageID *string) string {
	if iiifBaseURL == "" {
		iiifBaseURL = DefaultIIIFBaseURL
	}
	id := ""
	if imageID != nil {
		id = *imageID
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", iiifBaseURL, id, ImageWidth)
}
