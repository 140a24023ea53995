package services

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/alrodriguezdg/youstream/internal/apperrors"
	"github.com/alrodriguezdg/youstream/internal/config"
	"github.com/alrodriguezdg/youstream/internal/dto"
	"github.com/alrodriguezdg/youstream/internal/youtube"
)

// VideoService is the catalog proxy: it queries the YouTube Data API and
// reshapes results into the client-facing summary format. Nothing is
// persisted.
type VideoService struct {
	api youtube.API
	cfg *config.Config
}

func NewVideoService(api youtube.API, cfg *config.Config) *VideoService {
	return &VideoService{api: api, cfg: cfg}
}

// Search finds videos by relevance, then fetches their statistics and
// content details in a second call.
func (s *VideoService) Search(ctx context.Context, query string, maxResults int) (*dto.VideoListResponse, error) {
	if query == "" {
		return nil, apperrors.Validation("Query parameter is required")
	}

	searchResp, err := s.api.SearchVideos(ctx, query, maxResults)
	if err != nil {
		slog.Error("video search failed", "query", query, "error", err)
		return nil, apperrors.External("Error searching videos", err)
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return &dto.VideoListResponse{Success: true, Videos: []dto.VideoSummary{}}, nil
	}

	videosResp, err := s.api.ListVideos(ctx, ids)
	if err != nil {
		slog.Error("video details fetch failed", "ids", len(ids), "error", err)
		return nil, apperrors.External("Error searching videos", err)
	}

	return &dto.VideoListResponse{Success: true, Videos: reshapeVideos(videosResp.Items)}, nil
}

// Popular returns the mostPopular chart for the configured region. A
// category without chart data is an empty success, not an error.
func (s *VideoService) Popular(ctx context.Context, maxResults int, categoryID string) (*dto.VideoListResponse, error) {
	if categoryID == "" {
		categoryID = s.cfg.YouTubeDefaultCategory
	}

	videosResp, err := s.api.MostPopular(ctx, s.cfg.YouTubeRegion, categoryID, maxResults)
	if err != nil {
		if youtube.IsChartNotFound(err) {
			return &dto.VideoListResponse{
				Success: true,
				Videos:  []dto.VideoSummary{},
				Message: "No hay videos populares en esta categoría.",
			}, nil
		}
		slog.Error("popular videos fetch failed", "category", categoryID, "error", err)
		return nil, apperrors.External("Error getting popular videos", err)
	}

	return &dto.VideoListResponse{Success: true, Videos: reshapeVideos(videosResp.Items)}, nil
}

// Categories lists the video categories for the configured region.
func (s *VideoService) Categories(ctx context.Context) (*dto.CategoryListResponse, error) {
	resp, err := s.api.ListCategories(ctx, s.cfg.YouTubeRegion)
	if err != nil {
		slog.Error("category fetch failed", "error", err)
		return nil, apperrors.External("Error getting categories", err)
	}

	categories := make([]dto.VideoCategory, 0, len(resp.Items))
	for _, c := range resp.Items {
		categories = append(categories, dto.VideoCategory{ID: c.ID, Title: c.Snippet.Title})
	}
	return &dto.CategoryListResponse{Success: true, Categories: categories}, nil
}

func reshapeVideos(items []youtube.Video) []dto.VideoSummary {
	videos := make([]dto.VideoSummary, 0, len(items))
	for _, v := range items {
		viewCount, _ := strconv.ParseInt(v.Statistics.ViewCount, 10, 64)
		videos = append(videos, dto.VideoSummary{
			ID:          v.ID,
			Title:       v.Snippet.Title,
			Channel:     v.Snippet.ChannelTitle,
			Thumbnail:   v.Snippet.Thumbnails.Medium.URL,
			Duration:    FormatDuration(v.ContentDetails.Duration),
			Views:       FormatViews(viewCount),
			PublishedAt: v.Snippet.PublishedAt,
			Description: TruncateDescription(v.Snippet.Description),
		})
	}
	return videos
}
