package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

type MockGalleryUsecase struct {
	ShouldFailList       bool
	ShouldFailCategories bool
	Err                  error

	MockPage   entity.GalleryPage
	LastFilter entity.GalleryFilter
}

var _ usecasecontract.IGalleryUseCase = (*MockGalleryUsecase)(nil)

func NewMockGalleryUsecase() *MockGalleryUsecase {
	return &MockGalleryUsecase{
		MockPage: entity.GalleryPage{
			Items: []entity.GalleryItem{
				{ID: "p1", Type: entity.ContentTypeProject, Title: "Brand refresh", Category: "Branding"},
				{ID: "v1", Type: entity.ContentTypeVideo, Title: "Launch film", Category: "Film", Views: "1500", ViewsDisplay: "1.5K"},
			},
			Page:       1,
			PageSize:   12,
			TotalPages: 1,
			TotalCount: 2,
		},
	}
}

func (m *MockGalleryUsecase) ListGalleryItems(ctx context.Context, filter entity.GalleryFilter) (*entity.GalleryPage, error) {
	m.LastFilter = filter
	if m.ShouldFailList {
		if m.Err != nil {
			return nil, m.Err
		}
		return nil, errors.New("gallery failed")
	}
	page := m.MockPage
	return &page, nil
}

func (m *MockGalleryUsecase) ListCategories(ctx context.Context) ([]string, error) {
	if m.ShouldFailCategories {
		return nil, errors.New("categories failed")
	}
	return []string{entity.CategoryAll, "Branding", "Film"}, nil
}
