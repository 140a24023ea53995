package dto

// VideoSummary is the client-facing reshape of one catalog entry.
type VideoSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	Views       string `json:"views"`
	PublishedAt string `json:"publishedAt"`
	Description string `json:"description"`
}

type VideoListResponse struct {
	Success bool           `json:"success"`
	Videos  []VideoSummary `json:"videos"`
	Message string         `json:"message,omitempty"`
}

type VideoCategory struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CategoryListResponse struct {
	Success    bool            `json:"success"`
	Categories []VideoCategory `json:"categories"`
}
