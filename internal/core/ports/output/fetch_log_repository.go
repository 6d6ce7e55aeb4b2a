package ports

import (
	"context"

	"artwork-gallery/internal/core/domain"
)

type FetchLogRepository interface {
	Create(ctx context.Context, rec *domain.FetchRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error)
}
