package contract

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IMetadataCache keeps recently fetched video metadata keyed by platform id.
type IMetadataCache interface {
	GetMetadata(ctx context.Context, videoID string) (*entity.VideoMetadata, bool, error)
	SetMetadata(ctx context.Context, videoID string, meta *entity.VideoMetadata) error
	InvalidateMetadata(ctx context.Context, videoID string) error
}
