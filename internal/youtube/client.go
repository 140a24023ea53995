// Package youtube is a thin client for the YouTube Data API v3, covering the
// four read-only operations the catalog proxy needs: search, video details,
// most-popular chart and category listing.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// API is the subset of the YouTube Data API consumed by the video service.
// Handlers receive it through the service so tests can substitute a fake.
type API interface {
	SearchVideos(ctx context.Context, query string, maxResults int) (*SearchListResponse, error)
	ListVideos(ctx context.Context, ids []string) (*VideoListResponse, error)
	MostPopular(ctx context.Context, regionCode, categoryID string, maxResults int) (*VideoListResponse, error)
	ListCategories(ctx context.Context, regionCode string) (*CategoryListResponse, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests against httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchVideos runs search.list for video results ordered by relevance.
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) (*SearchListResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("part", "id,snippet")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("type", "video")
	params.Set("order", "relevance")

	var resp SearchListResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListVideos runs videos.list for the given IDs with snippet, statistics and
// contentDetails parts.
func (c *Client) ListVideos(ctx context.Context, ids []string) (*VideoListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var resp VideoListResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MostPopular runs videos.list against the mostPopular chart for a region
// and category.
func (c *Client) MostPopular(ctx context.Context, regionCode, categoryID string, maxResults int) (*VideoListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", regionCode)
	params.Set("videoCategoryId", categoryID)
	params.Set("maxResults", strconv.Itoa(maxResults))

	var resp VideoListResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories runs videoCategories.list for a region.
func (c *Client) ListCategories(ctx context.Context, regionCode string) (*CategoryListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("regionCode", regionCode)

	var resp CategoryListResponse
	if err := c.get(ctx, "/videoCategories", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call YouTube API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// APIError is a non-2xx response decoded from the standard Google error
// envelope. Reason carries the first error detail reason, e.g.
// "videoChartNotFound".
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Reason     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("YouTube API error (status %d, reason %q): %s", e.StatusCode, e.Reason, e.Message)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Errors  []struct {
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		if len(envelope.Error.Errors) > 0 {
			apiErr.Reason = envelope.Error.Errors[0].Reason
		}
	}
	return apiErr
}

// IsChartNotFound reports whether err is the API telling us a category has
// no mostPopular chart, which callers treat as an empty result.
func IsChartNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Reason == "videoChartNotFound"
}
