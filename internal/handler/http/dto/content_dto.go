package dto

import (
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// CreateProjectRequest defines the structure for creating a project.
type CreateProjectRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category" binding:"required"`
	Status        string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	ImageURL      string   `json:"image_url" binding:"omitempty,url"`
	ClientName    *string  `json:"client_name"`
	GalleryImages []string `json:"gallery_images"`
}

// UpdateProjectRequest is a partial update; absent fields are left alone.
type UpdateProjectRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Status        *string  `json:"status" binding:"omitempty,oneof=draft published archived"`
	ImageURL      *string  `json:"image_url" binding:"omitempty,url"`
	ClientName    *string  `json:"client_name"`
	GalleryImages []string `json:"gallery_images"`
}

type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
	SourceURL   string `json:"source_url" binding:"required,url"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
	SourceURL   *string `json:"source_url" binding:"omitempty,url"`
}

// GalleryQuery binds the public gallery query string.
type GalleryQuery struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (q GalleryQuery) ToFilter() entity.GalleryFilter {
	return entity.GalleryFilter{
		SearchTerm: q.Search,
		Type:       q.Type,
		Category:   q.Category,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

func (r CreateProjectRequest) ToEntity() *entity.Project {
	return &entity.Project{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Status:        entity.ContentStatus(r.Status),
		ImageURL:      r.ImageURL,
		ClientName:    r.ClientName,
		GalleryImages: r.GalleryImages,
	}
}

func (r UpdateProjectRequest) ToPatch() entity.ProjectPatch {
	patch := entity.ProjectPatch{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		ImageURL:      r.ImageURL,
		ClientName:    r.ClientName,
		GalleryImages: r.GalleryImages,
	}
	if r.Status != nil {
		s := entity.ContentStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

func (r CreateVideoRequest) ToEntity() *entity.Video {
	return &entity.Video{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Status:      entity.ContentStatus(r.Status),
		SourceURL:   r.SourceURL,
	}
}

func (r UpdateVideoRequest) ToPatch() entity.VideoPatch {
	patch := entity.VideoPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		SourceURL:   r.SourceURL,
	}
	if r.Status != nil {
		s := entity.ContentStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}
