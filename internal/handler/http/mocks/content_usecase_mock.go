package mocks

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// MockContentUsecase keeps projects and videos in maps keyed by id.
type MockContentUsecase struct {
	ShouldFailCreate bool
	ShouldFailList   bool

	Projects map[string]*entity.Project
	Videos   map[string]*entity.Video

	LastProjectPatch entity.ProjectPatch
	LastVideoPatch   entity.VideoPatch
	LastStatus       *entity.ContentStatus
}

var _ usecasecontract.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{
		Projects: map[string]*entity.Project{
			"p-pub":   {ID: "p-pub", Title: "Published", Category: "Branding", Status: entity.ContentStatusPublished},
			"p-draft": {ID: "p-draft", Title: "Draft", Category: "Branding", Status: entity.ContentStatusDraft},
		},
		Videos: map[string]*entity.Video{
			"v-on":  {ID: "v-on", Title: "Live", Category: "Film", Status: entity.ContentStatusActive},
			"v-off": {ID: "v-off", Title: "Hidden", Category: "Film", Status: entity.ContentStatusInactive},
		},
	}
}

func (m *MockContentUsecase) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if m.ShouldFailCreate {
		return nil, entity.NewValidationError("category", "is required")
	}
	project.ID = "p-new"
	m.Projects[project.ID] = project
	return project, nil
}

func (m *MockContentUsecase) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	if p, ok := m.Projects[id]; ok {
		return p, nil
	}
	return nil, entity.ErrNotFound
}

func (m *MockContentUsecase) ListProjects(ctx context.Context, status *entity.ContentStatus) ([]*entity.Project, error) {
	m.LastStatus = status
	if m.ShouldFailList {
		return nil, entity.NewStorageError("list projects", context.DeadlineExceeded)
	}
	out := make([]*entity.Project, 0, len(m.Projects))
	for _, id := range []string{"p-pub", "p-draft", "p-new"} {
		p, ok := m.Projects[id]
		if ok && (status == nil || p.Status == *status) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockContentUsecase) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	m.LastProjectPatch = patch
	p, ok := m.Projects[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p, nil
}

func (m *MockContentUsecase) DeleteProject(ctx context.Context, id string) error {
	if _, ok := m.Projects[id]; !ok {
		return entity.ErrNotFound
	}
	delete(m.Projects, id)
	return nil
}

func (m *MockContentUsecase) CreateVideo(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	if m.ShouldFailCreate {
		return nil, entity.NewValidationError("source_url", "must be a supported video link")
	}
	video.ID = "v-new"
	m.Videos[video.ID] = video
	return video, nil
}

func (m *MockContentUsecase) GetVideo(ctx context.Context, id string) (*entity.Video, error) {
	if v, ok := m.Videos[id]; ok {
		return v, nil
	}
	return nil, entity.ErrNotFound
}

func (m *MockContentUsecase) ListVideos(ctx context.Context, status *entity.ContentStatus) ([]*entity.Video, error) {
	m.LastStatus = status
	if m.ShouldFailList {
		return nil, entity.NewStorageError("list videos", context.DeadlineExceeded)
	}
	out := make([]*entity.Video, 0, len(m.Videos))
	for _, id := range []string{"v-on", "v-off", "v-new"} {
		v, ok := m.Videos[id]
		if ok && (status == nil || v.Status == *status) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *MockContentUsecase) UpdateVideo(ctx context.Context, id string, patch entity.VideoPatch) (*entity.Video, error) {
	m.LastVideoPatch = patch
	v, ok := m.Videos[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	return v, nil
}

func (m *MockContentUsecase) DeleteVideo(ctx context.Context, id string) error {
	if _, ok := m.Videos[id]; !ok {
		return entity.ErrNotFound
	}
	delete(m.Videos, id)
	return nil
}
