package external_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

const reelURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestCachedMetadataProvider_MissThenHit(t *testing.T) {
	next := &fakeProvider{meta: &entity.VideoMetadata{VideoID: "dQw4w9WgXcQ", Title: "Reel"}}
	cache := newFakeMetadataCache()
	p := NewCachedMetadataProvider(next, cache, nopLogger{})

	meta, err := p.FetchVideoMetadata(context.Background(), reelURL)
	require.NoError(t, err)
	assert.Equal(t, "Reel", meta.Title)
	assert.Equal(t, 1, next.calls)

	meta, err = p.FetchVideoMetadata(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Reel", meta.Title)
	assert.Equal(t, 1, next.calls, "second lookup of the same id is served from cache")
}

func TestCachedMetadataProvider_CacheFailureFallsThrough(t *testing.T) {
	next := &fakeProvider{meta: &entity.VideoMetadata{Title: "Reel"}}
	cache := newFakeMetadataCache()
	cache.ShouldFailGet = true
	cache.ShouldFailSet = true

	meta, err := NewCachedMetadataProvider(next, cache, nopLogger{}).FetchVideoMetadata(context.Background(), reelURL)
	require.NoError(t, err)
	assert.Equal(t, "Reel", meta.Title)
}

func TestCachedMetadataProvider_ProviderErrorIsNotCached(t *testing.T) {
	next := &fakeProvider{err: entity.ErrNotFound}
	cache := newFakeMetadataCache()

	_, err := NewCachedMetadataProvider(next, cache, nopLogger{}).FetchVideoMetadata(context.Background(), reelURL)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Empty(t, cache.entries)
}

func TestCachedMetadataProvider_InvalidURL(t *testing.T) {
	next := &fakeProvider{}
	_, err := NewCachedMetadataProvider(next, newFakeMetadataCache(), nopLogger{}).
		FetchVideoMetadata(context.Background(), "not a link")
	assert.ErrorIs(t, err, entity.ErrInvalidURL)
	assert.Zero(t, next.calls)
}
