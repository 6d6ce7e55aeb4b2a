package ports

import (
	"context"

	"artwork-gallery/internal/core/domain"
)

// ArtworkClient defines the contract for the artworks API
type ArtworkClient interface {
	// ListArtworks returns the "data" array of one artworks page. A nil slice
	// means the response carried no "data" array.
	ListArtworks(ctx context.Context, limit int) ([]domain.Artwork, error)
}
