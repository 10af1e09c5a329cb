package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IGalleryUseCase builds the public gallery feed.
type IGalleryUseCase interface {
	ListGalleryItems(ctx context.Context, filter entity.GalleryFilter) (*entity.GalleryPage, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// IContentUseCase is the administrative CRUD over projects and videos.
type IContentUseCase interface {
	CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetProject(ctx context.Context, id string) (*entity.Project, error)
	ListProjects(ctx context.Context, status *entity.ContentStatus) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error)
	DeleteProject(ctx context.Context, id string) error

	CreateVideo(ctx context.Context, video *entity.Video) (*entity.Video, error)
	GetVideo(ctx context.Context, id string) (*entity.Video, error)
	ListVideos(ctx context.Context, status *entity.ContentStatus) ([]*entity.Video, error)
	UpdateVideo(ctx context.Context, id string, patch entity.VideoPatch) (*entity.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}
