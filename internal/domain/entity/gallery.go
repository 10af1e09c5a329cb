package entity

import "time"

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// GalleryTypeAll disables type filtering.
const GalleryTypeAll = "all"

// GalleryItem is the request-scoped, merged view of a project or video.
type GalleryItem struct {
	ID            string      `json:"id"`
	Type          ContentType `json:"type"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	CreatedAt     time.Time   `json:"created_at"`
	ImageURL      string      `json:"image_url,omitempty"`
	ClientName    *string     `json:"client_name,omitempty"`
	GalleryImages []string    `json:"gallery_images,omitempty"`
	SourceURL     string      `json:"source_url,omitempty"`
	Thumbnail     string      `json:"thumbnail,omitempty"`
	Duration      string      `json:"duration,omitempty"`
	Views         string      `json:"views,omitempty"`
	ViewsDisplay  string      `json:"views_display,omitempty"`
	PublishedAt   *time.Time  `json:"published_at,omitempty"`
	ChannelTitle  string      `json:"channel_title,omitempty"`
	// Live is true when the video fields came from the external provider.
	Live bool `json:"live,omitempty"`
}

// GalleryFilter holds the public gallery query.
type GalleryFilter struct {
	SearchTerm string
	Type       string
	Category   string
	Page       int
	PageSize   int
}

// GalleryPage is one page of the filtered gallery.
type GalleryPage struct {
	Items      []GalleryItem `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalCount int           `json:"total_count"`
}
