package entity

import "time"

// ContentType tags the variant of a content item. It never changes after
// creation.
type ContentType string

const (
	ContentTypeProject ContentType = "project"
	ContentTypeVideo   ContentType = "video"
)

// ContentStatus is the publication state of a project or video.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
	ContentStatusActive    ContentStatus = "active"
	ContentStatusInactive  ContentStatus = "inactive"
)

// ProjectStatuses are the statuses a project can hold.
func ProjectStatuses() []ContentStatus {
	return []ContentStatus{ContentStatusDraft, ContentStatusPublished, ContentStatusArchived}
}

// VideoStatuses are the statuses a video can hold.
func VideoStatuses() []ContentStatus {
	return []ContentStatus{ContentStatusActive, ContentStatusInactive}
}

// PublicProjectStatuses are the project statuses shown on the public site.
// "active" is accepted for records created before projects had drafts.
func PublicProjectStatuses() []ContentStatus {
	return []ContentStatus{ContentStatusPublished, ContentStatusActive}
}

// PublicVideoStatuses are the video statuses shown on the public site.
func PublicVideoStatuses() []ContentStatus {
	return []ContentStatus{ContentStatusActive}
}

func statusIn(s ContentStatus, set []ContentStatus) bool {
	for _, c := range set {
		if s == c {
			return true
		}
	}
	return false
}

// Project is a portfolio entry with its own imagery.
type Project struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	Category      string        `bson:"category" json:"category"`
	Status        ContentStatus `bson:"status" json:"status"`
	ImageURL      string        `bson:"image_url" json:"image_url"`
	ClientName    *string       `bson:"client_name,omitempty" json:"client_name,omitempty"`
	GalleryImages []string      `bson:"gallery_images,omitempty" json:"gallery_images,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// IsPublic reports whether the project is visible to anonymous visitors.
func (p *Project) IsPublic() bool {
	return statusIn(p.Status, PublicProjectStatuses())
}

// Video is a link to an external platform video plus the last known copy
// of its metadata.
type Video struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Category     string        `bson:"category" json:"category"`
	Status       ContentStatus `bson:"status" json:"status"`
	SourceURL    string        `bson:"source_url" json:"source_url"`
	Thumbnail    *string       `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Duration     *string       `bson:"duration,omitempty" json:"duration,omitempty"`
	Views        *string       `bson:"views,omitempty" json:"views,omitempty"`
	PublishedAt  *time.Time    `bson:"published_at,omitempty" json:"published_at,omitempty"`
	ChannelTitle *string       `bson:"channel_title,omitempty" json:"channel_title,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

func (v *Video) IsPublic() bool {
	return statusIn(v.Status, PublicVideoStatuses())
}

// ApplyMetadata copies live metadata into the cached fields.
func (v *Video) ApplyMetadata(m *VideoMetadata) {
	if m == nil {
		return
	}
	thumb, dur, views, channel := m.Thumbnail, m.Duration, m.ViewCount, m.ChannelTitle
	v.Thumbnail = &thumb
	v.Duration = &dur
	v.Views = &views
	v.ChannelTitle = &channel
	if !m.PublishedAt.IsZero() {
		published := m.PublishedAt
		v.PublishedAt = &published
	}
}

// VideoMetadata is what the external platform reports for a video.
// Duration is already formatted as H:MM:SS or M:SS and ViewCount is the raw
// integer count as a string.
type VideoMetadata struct {
	VideoID      string    `json:"video_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail"`
	Duration     string    `json:"duration"`
	ViewCount    string    `json:"view_count"`
	PublishedAt  time.Time `json:"published_at"`
	ChannelTitle string    `json:"channel_title"`
}

// ProjectPatch is a partial update of a project. The content type is not
// part of it.
type ProjectPatch struct {
	Title         *string
	Description   *string
	Category      *string
	Status        *ContentStatus
	ImageURL      *string
	ClientName    *string
	GalleryImages []string
}

// VideoPatch is a partial update of a video.
type VideoPatch struct {
	Title       *string
	Description *string
	Category    *string
	Status      *ContentStatus
	SourceURL   *string
	Metadata    *VideoMetadata
}
