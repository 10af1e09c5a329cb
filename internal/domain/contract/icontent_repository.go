package contract

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IProjectRepository stores portfolio projects.
type IProjectRepository interface {
	CreateProject(ctx context.Context, project *entity.Project) error
	GetProjectByID(ctx context.Context, id string) (*entity.Project, error)
	// ListProjectsByStatus returns projects in store order (newest first).
	// No statuses means every project.
	ListProjectsByStatus(ctx context.Context, statuses ...entity.ContentStatus) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// IVideoRepository stores external platform videos.
type IVideoRepository interface {
	CreateVideo(ctx context.Context, video *entity.Video) error
	GetVideoByID(ctx context.Context, id string) (*entity.Video, error)
	ListVideosByStatus(ctx context.Context, statuses ...entity.ContentStatus) ([]*entity.Video, error)
	UpdateVideo(ctx context.Context, id string, patch entity.VideoPatch) (*entity.Video, error)
	// UpdateVideoMetadata refreshes only the cached metadata fields.
	UpdateVideoMetadata(ctx context.Context, id string, meta *entity.VideoMetadata) error
	DeleteVideo(ctx context.Context, id string) error
}
