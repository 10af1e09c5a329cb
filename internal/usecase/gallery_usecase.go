package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
	"github.com/mikiasgoitom/Showcase/internal/utils"
)

const (
	maxGalleryPageSize  = 100
	cacheRefreshTimeout = 10 * time.Second
)

// GalleryUsecase merges projects and enriched videos into the public feed.
type GalleryUsecase struct {
	projectRepo  contract.IProjectRepository
	videoRepo    contract.IVideoRepository
	metadata     contract.IVideoMetadataProvider
	logger       usecasecontract.IAppLogger
	config       usecasecontract.IConfigProvider
	cacheRefresh bool
}

func NewGalleryUsecase(projectRepo contract.IProjectRepository, videoRepo contract.IVideoRepository, metadata contract.IVideoMetadataProvider, logger usecasecontract.IAppLogger, cfg usecasecontract.IConfigProvider) *GalleryUsecase {
	return &GalleryUsecase{
		projectRepo:  projectRepo,
		videoRepo:    videoRepo,
		metadata:     metadata,
		logger:       logger,
		config:       cfg,
		cacheRefresh: true,
	}
}

var _ usecasecontract.IGalleryUseCase = (*GalleryUsecase)(nil)

// SetCacheRefresh toggles the background write-back of live metadata into
// the stored video records.
func (uc *GalleryUsecase) SetCacheRefresh(enabled bool) {
	uc.cacheRefresh = enabled
}

// ListGalleryItems returns one page of the merged, sorted and filtered feed.
// Only content store failures are returned; metadata failures degrade to the
// stored fields.
func (uc *GalleryUsecase) ListGalleryItems(ctx context.Context, filter entity.GalleryFilter) (*entity.GalleryPage, error) {
	start := time.Now()
	defer func() { metrics.ObserveGalleryBuild(time.Since(start).Seconds()) }()

	typ, err := normalizeGalleryType(filter.Type)
	if err != nil {
		return nil, err
	}
	filter.Type = typ
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = uc.config.GetGalleryDefaultPageSize()
	}
	if pageSize > maxGalleryPageSize {
		pageSize = maxGalleryPageSize
	}

	projects, videos, err := uc.loadPublicContent(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.GalleryItem, 0, len(projects)+len(videos))
	for _, p := range projects {
		items = append(items, projectItem(p))
	}
	items = append(items, uc.enrichVideos(ctx, videos)...)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	filtered := items[:0]
	for _, item := range items {
		if matchesGalleryFilter(item, filter) {
			filtered = append(filtered, item)
		}
	}

	return paginate(filtered, page, pageSize), nil
}

// ListCategories returns the distinct categories of public content, "All" first.
func (uc *GalleryUsecase) ListCategories(ctx context.Context) ([]string, error) {
	projects, videos, err := uc.loadPublicContent(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, p := range projects {
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
	}
	for _, v := range videos {
		if v.Category != "" {
			seen[v.Category] = struct{}{}
		}
	}
	delete(seen, entity.CategoryAll)

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return append([]string{entity.CategoryAll}, categories...), nil
}

// loadPublicContent reads both stores concurrently.
func (uc *GalleryUsecase) loadPublicContent(ctx context.Context) ([]*entity.Project, []*entity.Video, error) {
	var projects []*entity.Project
	var videos []*entity.Video

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = uc.projectRepo.ListProjectsByStatus(gctx, entity.PublicProjectStatuses()...)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		videos, err = uc.videoRepo.ListVideosByStatus(gctx, entity.PublicVideoStatuses()...)
		if err != nil {
			return fmt.Errorf("list videos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorf("failed to load gallery content: %v", err)
		return nil, nil, err
	}
	return projects, videos, nil
}

// enrichVideos fetches metadata for every video concurrently. Each fetch is
// isolated: a failure only affects its own item.
func (uc *GalleryUsecase) enrichVideos(ctx context.Context, videos []*entity.Video) []entity.GalleryItem {
	out := make([]entity.GalleryItem, len(videos))
	var g errgroup.Group
	if limit := uc.config.GetEnrichmentConcurrency(); limit > 0 {
		g.SetLimit(limit)
	}
	for i, v := range videos {
		i, v := i, v
		g.Go(func() error {
			out[i] = uc.enrichVideo(ctx, v)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (uc *GalleryUsecase) enrichVideo(ctx context.Context, v *entity.Video) entity.GalleryItem {
	fetchCtx := ctx
	if timeout := uc.config.GetMetadataTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	meta, err := uc.metadata.FetchVideoMetadata(fetchCtx, v.SourceURL)
	if err != nil {
		uc.logger.Warnf("video %s: using stored metadata: %v", v.ID, err)
		metrics.IncEnrichment("fallback")
		return uc.fallbackItem(v)
	}
	metrics.IncEnrichment("live")

	if uc.cacheRefresh && cacheDiffers(v, meta) {
		uc.scheduleCacheRefresh(v.ID, meta)
	}
	return uc.liveItem(v, meta)
}

// scheduleCacheRefresh persists live metadata without holding up the request.
func (uc *GalleryUsecase) scheduleCacheRefresh(videoID string, meta *entity.VideoMetadata) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheRefreshTimeout)
		defer cancel()
		if err := uc.videoRepo.UpdateVideoMetadata(ctx, videoID, meta); err != nil {
			uc.logger.Warnf("video %s: cache refresh failed: %v", videoID, err)
		}
	}()
}

func cacheDiffers(v *entity.Video, m *entity.VideoMetadata) bool {
	if v.PublishedAt == nil || !v.PublishedAt.Equal(m.PublishedAt) {
		return true
	}
	return deref(v.Thumbnail) != m.Thumbnail ||
		deref(v.Duration) != m.Duration ||
		deref(v.Views) != m.ViewCount ||
		deref(v.ChannelTitle) != m.ChannelTitle
}

func projectItem(p *entity.Project) entity.GalleryItem {
	return entity.GalleryItem{
		ID:            p.ID,
		Type:          entity.ContentTypeProject,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		CreatedAt:     p.CreatedAt,
		ImageURL:      p.ImageURL,
		ClientName:    p.ClientName,
		GalleryImages: p.GalleryImages,
	}
}

func (uc *GalleryUsecase) baseVideoItem(v *entity.Video) entity.GalleryItem {
	return entity.GalleryItem{
		ID:           v.ID,
		Type:         entity.ContentTypeVideo,
		Title:        v.Title,
		Description:  v.Description,
		Category:     v.Category,
		CreatedAt:    v.CreatedAt,
		SourceURL:    v.SourceURL,
		Thumbnail:    firstNonEmpty(deref(v.Thumbnail), defaultThumbnail(v.SourceURL)),
		Duration:     deref(v.Duration),
		Views:        firstNonEmpty(deref(v.Views), "0"),
		PublishedAt:  v.PublishedAt,
		ChannelTitle: firstNonEmpty(deref(v.ChannelTitle), uc.config.GetDefaultChannelTitle()),
	}
}

func (uc *GalleryUsecase) fallbackItem(v *entity.Video) entity.GalleryItem {
	item := uc.baseVideoItem(v)
	item.ViewsDisplay = utils.FormatViewCount(item.Views)
	return item
}

// liveItem layers live metadata over the cached fields: live > cached > default.
func (uc *GalleryUsecase) liveItem(v *entity.Video, m *entity.VideoMetadata) entity.GalleryItem {
	item := uc.baseVideoItem(v)
	item.Title = firstNonEmpty(m.Title, item.Title)
	item.Description = firstNonEmpty(m.Description, item.Description)
	item.Thumbnail = firstNonEmpty(m.Thumbnail, item.Thumbnail)
	item.Duration = firstNonEmpty(m.Duration, item.Duration)
	item.Views = firstNonEmpty(m.ViewCount, item.Views)
	item.ChannelTitle = firstNonEmpty(m.ChannelTitle, item.ChannelTitle)
	if !m.PublishedAt.IsZero() {
		published := m.PublishedAt
		item.PublishedAt = &published
	}
	item.ViewsDisplay = utils.FormatViewCount(item.Views)
	item.Live = true
	return item
}

func defaultThumbnail(sourceURL string) string {
	id, ok := utils.ExtractVideoID(sourceURL)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", id)
}

func normalizeGalleryType(raw string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "", entity.GalleryTypeAll:
		return entity.GalleryTypeAll, nil
	case string(entity.ContentTypeProject), string(entity.ContentTypeVideo):
		return t, nil
	}
	return "", entity.NewValidationError("type", "must be one of project, video, all")
}

func matchesGalleryFilter(item entity.GalleryItem, f entity.GalleryFilter) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(item.Title), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			return false
		}
	}
	if f.Type != entity.GalleryTypeAll && string(item.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != entity.CategoryAll && item.Category != f.Category {
		return false
	}
	return true
}

func paginate(items []entity.GalleryItem, page, pageSize int) *entity.GalleryPage {
	total := len(items)
	result := &entity.GalleryPage{
		Items:      []entity.GalleryItem{},
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	// Compare pages before computing the offset; a huge page would overflow.
	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	result.Items = append(result.Items, items[start:end]...)
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
