package youtube

// Response structs mirror the wire shapes of search.list, videos.list and
// videoCategories.list, limited to the fields the service reads.

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

type Snippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type SearchResultID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type SearchResult struct {
	ID      SearchResultID `json:"id"`
	Snippet Snippet        `json:"snippet"`
}

type SearchListResponse struct {
	Items []SearchResult `json:"items"`
}

type Statistics struct {
	ViewCount string `json:"viewCount"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

type Video struct {
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	Statistics     Statistics     `json:"statistics"`
	ContentDetails ContentDetails `json:"contentDetails"`
}

type VideoListResponse struct {
	Items []Video `json:"items"`
}

type CategorySnippet struct {
	Title string `json:"title"`
}

type Category struct {
	ID      string          `json:"id"`
	Snippet CategorySnippet `json:"snippet"`
}

type CategoryListResponse struct {
	Items []Category `json:"items"`
}
