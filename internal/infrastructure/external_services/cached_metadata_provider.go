package external_services

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
	"github.com/mikiasgoitom/Showcase/internal/utils"
)

// CachedMetadataProvider serves recent lookups from a metadata cache and
// falls through to the wrapped provider on a miss. Cache errors never fail
// a lookup.
type CachedMetadataProvider struct {
	next   contract.IVideoMetadataProvider
	cache  contract.IMetadataCache
	logger usecasecontract.IAppLogger
}

func NewCachedMetadataProvider(next contract.IVideoMetadataProvider, cache contract.IMetadataCache, logger usecasecontract.IAppLogger) *CachedMetadataProvider {
	return &CachedMetadataProvider{next: next, cache: cache, logger: logger}
}

var _ contract.IVideoMetadataProvider = (*CachedMetadataProvider)(nil)

func (p *CachedMetadataProvider) FetchVideoMetadata(ctx context.Context, sourceURL string) (*entity.VideoMetadata, error) {
	videoID, ok := utils.ExtractVideoID(sourceURL)
	if !ok {
		return nil, entity.ErrInvalidURL
	}

	meta, hit, err := p.cache.GetMetadata(ctx, videoID)
	switch {
	case err != nil:
		metrics.IncMetadataCache("error")
		p.logger.Warnf("metadata cache read for %s failed: %v", videoID, err)
	case hit:
		metrics.IncMetadataCache("hit")
		return meta, nil
	default:
		metrics.IncMetadataCache("miss")
	}

	meta, err = p.next.FetchVideoMetadata(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	if err := p.cache.SetMetadata(context.WithoutCancel(ctx), videoID, meta); err != nil {
		p.logger.Warnf("metadata cache write for %s failed: %v", videoID, err)
	}
	return meta, nil
}
