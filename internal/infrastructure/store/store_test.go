package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// Runs only against a live Redis: REDIS_TEST_URL=redis://localhost:6379/15
func newTestStore(t *testing.T) *MetadataCacheStore {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())
	return NewMetadataCacheStore(rdb, time.Minute)
}

func TestMetadataCacheStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_ = s.InvalidateMetadata(ctx, "dQw4w9WgXcQ")

	_, ok, err := s.GetMetadata(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.False(t, ok)

	meta := &entity.VideoMetadata{VideoID: "dQw4w9WgXcQ", Title: "Reel", ViewCount: "1500"}
	require.NoError(t, s.SetMetadata(ctx, "dQw4w9WgXcQ", meta))

	got, ok, err := s.GetMetadata(ctx, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Reel", got.Title)
	assert.Equal(t, "1500", got.ViewCount)

	require.NoError(t, s.InvalidateMetadata(ctx, "dQw4w9WgXcQ"))
	_, ok, _ = s.GetMetadata(ctx, "dQw4w9WgXcQ")
	assert.False(t, ok)
}
