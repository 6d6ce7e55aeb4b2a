package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"artwork-gallery/internal/core/domain"
)

// MockArtworkClient is a mock of ArtworkClient.
type MockArtworkClient struct {
	mock.Mock
}

func (m *MockArtworkClient) ListArtworks(ctx context.Context, limit int) ([]domain.Artwork, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artwork), args.Error(1)
}

// MockFetchLogRepo is a mock of FetchLogRepository.
type MockFetchLogRepo struct {
	mock.Mock
}

func (m *MockFetchLogRepo) Create(ctx context.Context, rec *domain.FetchRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockFetchLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FetchRecord), args.Error(1)
}

// GatedArtworkClient blocks every ListArtworks call until Release is called,
// so tests can observe the loading state.
type GatedArtworkClient struct {
	Artworks []domain.Artwork
	Err      error

	started chan struct{}
	release chan struct{}
}

func NewGatedArtworkClient(artworks []domain.Artwork, err error) *GatedArtworkClient {
	return &GatedArtworkClient{
		Artworks: artworks,
		Err:      err,
		started:  make(chan struct{}, 16),
		release:  make(chan struct{}),
	}
}

func (g *GatedArtworkClient) ListArtworks(ctx context.Context, limit int) ([]domain.Artwork, error) {
	g.started <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Artworks, nil
}

// Started is signalled once per call that reached the client.
func (g *GatedArtworkClient) Started() <-chan struct{} {
	return g.started
}

// Release unblocks all pending and future calls.
func (g *GatedArtworkClient) Release() {
	close(g.release)
}
