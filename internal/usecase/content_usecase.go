package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
	"github.com/mikiasgoitom/Showcase/internal/utils"
)

// ContentUsecase implements administrative CRUD for projects and videos.
type ContentUsecase struct {
	projectRepo contract.IProjectRepository
	videoRepo   contract.IVideoRepository
	metadata    contract.IVideoMetadataProvider
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
	now         func() time.Time
}

func NewContentUsecase(projectRepo contract.IProjectRepository, videoRepo contract.IVideoRepository, metadata contract.IVideoMetadataProvider, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger, cfg usecasecontract.IConfigProvider) *ContentUsecase {
	return &ContentUsecase{
		projectRepo: projectRepo,
		videoRepo:   videoRepo,
		metadata:    metadata,
		uuidgen:     uuidgen,
		logger:      logger,
		config:      cfg,
		now:         time.Now,
	}
}

var _ usecasecontract.IContentUseCase = (*ContentUsecase)(nil)

func (uc *ContentUsecase) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if project == nil {
		return nil, entity.NewValidationError("", "project is required")
	}
	project.Title = strings.TrimSpace(project.Title)
	project.Category = strings.TrimSpace(project.Category)
	if project.Status == "" {
		project.Status = entity.ContentStatusDraft
	}
	if err := validateContent(project.Title, project.Category, project.Status, entity.ProjectStatuses()); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	project.ID = uc.uuidgen.NewUUID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := uc.projectRepo.CreateProject(ctx, project); err != nil {
		uc.logger.Errorf("failed to create project: %v", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	uc.logger.Infof("project %s created", project.ID)
	return project, nil
}

func (uc *ContentUsecase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetProjectByID(ctx, id)
}

// ListProjects returns every project, or only those in status when given.
func (uc *ContentUsecase) ListProjects(ctx context.Context, status *entity.ContentStatus) ([]*entity.Project, error) {
	if status == nil {
		return uc.projectRepo.ListProjectsByStatus(ctx)
	}
	if !slices.Contains(entity.ProjectStatuses(), *status) {
		return nil, entity.NewValidationError("status", "unknown project status")
	}
	return uc.projectRepo.ListProjectsByStatus(ctx, *status)
}

func (uc *ContentUsecase) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, entity.NewValidationError("title", "must not be empty")
	}
	if err := validateCategoryPatch(patch.Category); err != nil {
		return nil, err
	}
	if patch.Status != nil && !slices.Contains(entity.ProjectStatuses(), *patch.Status) {
		return nil, entity.NewValidationError("status", "unknown project status")
	}
	project, err := uc.projectRepo.UpdateProject(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *ContentUsecase) DeleteProject(ctx context.Context, id string) error {
	if err := uc.projectRepo.DeleteProject(ctx, id); err != nil {
		return err
	}
	uc.logger.Infof("project %s deleted", id)
	return nil
}

// CreateVideo validates the platform link and stores the video together with
// whatever metadata can be fetched right now.
func (uc *ContentUsecase) CreateVideo(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	if video == nil {
		return nil, entity.NewValidationError("", "video is required")
	}
	video.Title = strings.TrimSpace(video.Title)
	video.Category = strings.TrimSpace(video.Category)
	video.SourceURL = strings.TrimSpace(video.SourceURL)
	if video.Status == "" {
		video.Status = entity.ContentStatusActive
	}
	if err := validateContent(video.Title, video.Category, video.Status, entity.VideoStatuses()); err != nil {
		return nil, err
	}
	if _, ok := utils.ExtractVideoID(video.SourceURL); !ok {
		return nil, entity.NewValidationError("source_url", "not a recognised video link")
	}

	video.ApplyMetadata(uc.prefetch(ctx, video.SourceURL))

	now := uc.now().UTC()
	video.ID = uc.uuidgen.NewUUID()
	video.CreatedAt = now
	video.UpdatedAt = now
	if err := uc.videoRepo.CreateVideo(ctx, video); err != nil {
		uc.logger.Errorf("failed to create video: %v", err)
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	uc.logger.Infof("video %s created", video.ID)
	return video, nil
}

func (uc *ContentUsecase) GetVideo(ctx context.Context, id string) (*entity.Video, error) {
	return uc.videoRepo.GetVideoByID(ctx, id)
}

func (uc *ContentUsecase) ListVideos(ctx context.Context, status *entity.ContentStatus) ([]*entity.Video, error) {
	if status == nil {
		return uc.videoRepo.ListVideosByStatus(ctx)
	}
	if !slices.Contains(entity.VideoStatuses(), *status) {
		return nil, entity.NewValidationError("status", "unknown video status")
	}
	return uc.videoRepo.ListVideosByStatus(ctx, *status)
}

// UpdateVideo applies patch. A changed link is validated and its metadata
// re-fetched.
func (uc *ContentUsecase) UpdateVideo(ctx context.Context, id string, patch entity.VideoPatch) (*entity.Video, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, entity.NewValidationError("title", "must not be empty")
	}
	if err := validateCategoryPatch(patch.Category); err != nil {
		return nil, err
	}
	if patch.Status != nil && !slices.Contains(entity.VideoStatuses(), *patch.Status) {
		return nil, entity.NewValidationError("status", "unknown video status")
	}
	if patch.SourceURL != nil {
		url := strings.TrimSpace(*patch.SourceURL)
		if _, ok := utils.ExtractVideoID(url); !ok {
			return nil, entity.NewValidationError("source_url", "not a recognised video link")
		}
		patch.SourceURL = &url
		patch.Metadata = uc.prefetch(ctx, url)
	}
	return uc.videoRepo.UpdateVideo(ctx, id, patch)
}

func (uc *ContentUsecase) DeleteVideo(ctx context.Context, id string) error {
	if err := uc.videoRepo.DeleteVideo(ctx, id); err != nil {
		return err
	}
	uc.logger.Infof("video %s deleted", id)
	return nil
}

// prefetch returns nil when the provider cannot answer; the video is stored
// without cached metadata and the gallery falls back to defaults.
func (uc *ContentUsecase) prefetch(ctx context.Context, sourceURL string) *entity.VideoMetadata {
	fetchCtx := ctx
	if timeout := uc.config.GetMetadataTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	meta, err := uc.metadata.FetchVideoMetadata(fetchCtx, sourceURL)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Warnf("metadata prefetch for %s failed: %v", sourceURL, err)
		}
		return nil
	}
	return meta
}

func validateCategoryPatch(category *string) error {
	if category == nil {
		return nil
	}
	switch strings.TrimSpace(*category) {
	case "":
		return entity.NewValidationError("category", "must not be empty")
	case entity.CategoryAll:
		return entity.NewValidationError("category", fmt.Sprintf("%q is reserved", entity.CategoryAll))
	}
	return nil
}

func validateContent(title, category string, status entity.ContentStatus, allowed []entity.ContentStatus) error {
	if title == "" {
		return entity.NewValidationError("title", "is required")
	}
	if category == "" {
		return entity.NewValidationError("category", "is required")
	}
	if category == entity.CategoryAll {
		return entity.NewValidationError("category", fmt.Sprintf("%q is reserved", entity.CategoryAll))
	}
	if !slices.Contains(allowed, status) {
		return entity.NewValidationError("status", "unknown status")
	}
	return nil
}
