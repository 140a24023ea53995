package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alrodriguezdg/youstream/internal/apperrors"
	"github.com/alrodriguezdg/youstream/internal/config"
	"github.com/alrodriguezdg/youstream/internal/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements youtube.API with per-call function fields.
type fakeAPI struct {
	searchFn     func(ctx context.Context, query string, maxResults int) (*youtube.SearchListResponse, error)
	listFn       func(ctx context.Context, ids []string) (*youtube.VideoListResponse, error)
	popularFn    func(ctx context.Context, regionCode, categoryID string, maxResults int) (*youtube.VideoListResponse, error)
	categoriesFn func(ctx context.Context, regionCode string) (*youtube.CategoryListResponse, error)
}

func (f *fakeAPI) SearchVideos(ctx context.Context, query string, maxResults int) (*youtube.SearchListResponse, error) {
	return f.searchFn(ctx, query, maxResults)
}

func (f *fakeAPI) ListVideos(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	return f.listFn(ctx, ids)
}

func (f *fakeAPI) MostPopular(ctx context.Context, regionCode, categoryID string, maxResults int) (*youtube.VideoListResponse, error) {
	return f.popularFn(ctx, regionCode, categoryID, maxResults)
}

func (f *fakeAPI) ListCategories(ctx context.Context, regionCode string) (*youtube.CategoryListResponse, error) {
	return f.categoriesFn(ctx, regionCode)
}

func videoTestConfig() *config.Config {
	return &config.Config{
		YouTubeRegion:          "ES",
		YouTubeDefaultCategory: "28",
	}
}

func sampleVideo() youtube.Video {
	return youtube.Video{
		ID: "abc123",
		Snippet: youtube.Snippet{
			Title:        "Aprende Go",
			ChannelTitle: "Canal Dev",
			PublishedAt:  "2024-05-01T10:00:00Z",
			Description:  "Un video corto.",
			Thumbnails: youtube.Thumbnails{
				Medium: youtube.Thumbnail{URL: "https://i.ytimg.com/vi/abc123/mqdefault.jpg"},
			},
		},
		Statistics:     youtube.Statistics{ViewCount: "1500"},
		ContentDetails: youtube.ContentDetails{Duration: "PT4M13S"},
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	called := false
	api := &fakeAPI{
		searchFn: func(context.Context, string, int) (*youtube.SearchListResponse, error) {
			called = true
			return nil, nil
		},
	}
	svc := NewVideoService(api, videoTestConfig())

	resp, err := svc.Search(context.Background(), "", 20)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Equal(t, "Query parameter is required", apperrors.MessageOf(err))
	assert.False(t, called, "empty query must not reach the API")
}

func TestSearchNoResultsSkipsDetails(t *testing.T) {
	detailsCalled := false
	api := &fakeAPI{
		searchFn: func(context.Context, string, int) (*youtube.SearchListResponse, error) {
			return &youtube.SearchListResponse{}, nil
		},
		listFn: func(context.Context, []string) (*youtube.VideoListResponse, error) {
			detailsCalled = true
			return nil, nil
		},
	}
	svc := NewVideoService(api, videoTestConfig())

	resp, err := svc.Search(context.Background(), "golang", 20)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Videos)
	assert.False(t, detailsCalled)
}

func TestSearchReshapesResults(t *testing.T) {
	var gotIDs []string
	api := &fakeAPI{
		searchFn: func(_ context.Context, query string, maxResults int) (*youtube.SearchListResponse, error) {
			assert.Equal(t, "golang", query)
			assert.Equal(t, 20, maxResults)
			return &youtube.SearchListResponse{Items: []youtube.SearchResult{
				{ID: youtube.SearchResultID{VideoID: "abc123"}},
			}}, nil
		},
		listFn: func(_ context.Context, ids []string) (*youtube.VideoListResponse, error) {
			gotIDs = ids
			return &youtube.VideoListResponse{Items: []youtube.Video{sampleVideo()}}, nil
		},
	}
	svc := NewVideoService(api, videoTestConfig())

	resp, err := svc.Search(context.Background(), "golang", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123"}, gotIDs)
	require.Len(t, resp.Videos, 1)

	v := resp.Videos[0]
	assert.Equal(t, "abc123", v.ID)
	assert.Equal(t, "Aprende Go", v.Title)
	assert.Equal(t, "Canal Dev", v.Channel)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/mqdefault.jpg", v.Thumbnail)
	assert.Equal(t, "4:13", v.Duration)
	assert.Equal(t, "1K", v.Views)
	assert.Equal(t, "2024-05-01T10:00:00Z", v.PublishedAt)
	assert.Equal(t, "Un video corto.", v.Description)
}

func TestSearchAPIError(t *testing.T) {
	api := &fakeAPI{
		searchFn: func(context.Context, string, int) (*youtube.SearchListResponse, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewVideoService(api, videoTestConfig())

	resp, err := svc.Search(context.Background(), "golang", 20)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindExternal, apperrors.KindOf(err))
	assert.Equal(t, "Error searching videos", apperrors.MessageOf(err))
}

func TestPopular(t *testing.T) {
	t.Run("uses region and default category", func(t *testing.T) {
		api := &fakeAPI{
			popularFn: func(_ context.Context, regionCode, categoryID string, maxResults int) (*youtube.VideoListResponse, error) {
				assert.Equal(t, "ES", regionCode)
				assert.Equal(t, "28", categoryID)
				assert.Equal(t, 20, maxResults)
				return &youtube.VideoListResponse{Items: []youtube.Video{sampleVideo()}}, nil
			},
		}
		svc := NewVideoService(api, videoTestConfig())

		resp, err := svc.Popular(context.Background(), 20, "")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.Len(t, resp.Videos, 1)
		assert.Equal(t, "1K", resp.Videos[0].Views)
	})

	t.Run("chart not found is an empty success", func(t *testing.T) {
		api := &fakeAPI{
			popularFn: func(context.Context, string, string, int) (*youtube.VideoListResponse, error) {
				return nil, &youtube.APIError{StatusCode: 400, Reason: "videoChartNotFound"}
			},
		}
		svc := NewVideoService(api, videoTestConfig())

		resp, err := svc.Popular(context.Background(), 20, "19")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Videos)
		assert.Equal(t, "No hay videos populares en esta categoría.", resp.Message)
	})

	t.Run("other API errors fail", func(t *testing.T) {
		api := &fakeAPI{
			popularFn: func(context.Context, string, string, int) (*youtube.VideoListResponse, error) {
				return nil, &youtube.APIError{StatusCode: 403, Reason: "quotaExceeded"}
			},
		}
		svc := NewVideoService(api, videoTestConfig())

		resp, err := svc.Popular(context.Background(), 20, "28")
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindExternal, apperrors.KindOf(err))
		assert.Equal(t, "Error getting popular videos", apperrors.MessageOf(err))
	})
}

func TestCategories(t *testing.T) {
	t.Run("reshapes to id and title", func(t *testing.T) {
		api := &fakeAPI{
			categoriesFn: func(_ context.Context, regionCode string) (*youtube.CategoryListResponse, error) {
				assert.Equal(t, "ES", regionCode)
				return &youtube.CategoryListResponse{Items: []youtube.Category{
					{ID: "1", Snippet: youtube.CategorySnippet{Title: "Film & Animation"}},
					{ID: "28", Snippet: youtube.CategorySnippet{Title: "Science & Technology"}},
				}}, nil
			},
		}
		svc := NewVideoService(api, videoTestConfig())

		resp, err := svc.Categories(context.Background())
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.Len(t, resp.Categories, 2)
		assert.Equal(t, "28", resp.Categories[1].ID)
		assert.Equal(t, "Science & Technology", resp.Categories[1].Title)
	})

	t.Run("API errors fail", func(t *testing.T) {
		api := &fakeAPI{
			categoriesFn: func(context.Context, string) (*youtube.CategoryListResponse, error) {
				return nil, errors.New("boom")
			},
		}
		svc := NewVideoService(api, videoTestConfig())

		resp, err := svc.Categories(context.Background())
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindExternal, apperrors.KindOf(err))
	})
}
