package external_services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/Showcase/internal/utils"
)

// HTTPDoer describes the HTTP client used by the YouTube service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// YouTubeService fetches live video metadata from the YouTube Data API v3.
type YouTubeService struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

func NewYouTubeService(baseURL, apiKey string, client HTTPDoer) *YouTubeService {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTubeService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  client,
	}
}

var _ contract.IVideoMetadataProvider = (*YouTubeService)(nil)

type ytThumbnail struct {
	URL string `json:"url"`
}

type ytVideosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string                 `json:"title"`
			Description  string                 `json:"description"`
			PublishedAt  time.Time              `json:"publishedAt"`
			ChannelTitle string                 `json:"channelTitle"`
			Thumbnails   map[string]ytThumbnail `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// thumbnailPreference lists the sizes from best to worst.
var thumbnailPreference = []string{"maxres", "standard", "high", "medium", "default"}

// FetchVideoMetadata performs one videos.list lookup.
func (s *YouTubeService) FetchVideoMetadata(ctx context.Context, sourceURL string) (*entity.VideoMetadata, error) {
	videoID, ok := utils.ExtractVideoID(sourceURL)
	if !ok {
		return nil, entity.ErrInvalidURL
	}
	if s.apiKey == "" {
		return nil, fmt.Errorf("youtube: api key not configured: %w", entity.ErrNotFound)
	}

	start := time.Now()
	defer func() { metrics.ObserveMetadataFetch(time.Since(start).Seconds()) }()

	q := url.Values{}
	q.Set("part", "snippet,contentDetails,statistics")
	q.Set("id", videoID)
	q.Set("key", s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/videos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build youtube request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("youtube returned %d: %w", resp.StatusCode, entity.ErrNotFound)
	}

	var payload ytVideosResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("youtube video %s: %w", videoID, entity.ErrNotFound)
	}

	item := payload.Items[0]
	meta := &entity.VideoMetadata{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Duration:     utils.FormatDuration(item.ContentDetails.Duration),
		ViewCount:    item.Statistics.ViewCount,
		PublishedAt:  item.Snippet.PublishedAt,
		ChannelTitle: item.Snippet.ChannelTitle,
	}
	for _, size := range thumbnailPreference {
		if t, ok := item.Snippet.Thumbnails[size]; ok && t.URL != "" {
			meta.Thumbnail = t.URL
			break
		}
	}
	return meta, nil
}
