package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

const defaultMetadataTTL = 30 * time.Minute

// MetadataCacheStore keeps live video metadata in Redis for a short TTL so a
// burst of gallery requests does not hit the platform API for every video.
type MetadataCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMetadataCacheStore(rdb *redis.Client, ttl time.Duration) *MetadataCacheStore {
	if ttl <= 0 {
		ttl = defaultMetadataTTL
	}
	return &MetadataCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.IMetadataCache = (*MetadataCacheStore)(nil)

func metadataKey(videoID string) string { return fmt.Sprintf("video:meta:%s", videoID) }

// GetMetadata reports a miss for absent or undecodable entries.
func (c *MetadataCacheStore) GetMetadata(ctx context.Context, videoID string) (*entity.VideoMetadata, bool, error) {
	b, err := c.rdb.Get(ctx, metadataKey(videoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var meta entity.VideoMetadata
	if err := json.Unmarshal(b, &meta); err != nil {
		return nil, false, nil
	}
	return &meta, true, nil
}

func (c *MetadataCacheStore) SetMetadata(ctx context.Context, videoID string, meta *entity.VideoMetadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, metadataKey(videoID), data, c.ttl).Err()
}

func (c *MetadataCacheStore) InvalidateMetadata(ctx context.Context, videoID string) error {
	return c.rdb.Del(ctx, metadataKey(videoID)).Err()
}
