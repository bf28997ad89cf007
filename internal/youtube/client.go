// Package youtube provides a minimal client for the YouTube Data API v3
// videos endpoint: the snippet and content details the processing daemon needs
// to describe a video and decide whether it may be offered for download.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the YouTube Data API v3 endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	// RequestTimeout is the timeout for YouTube API requests.
	RequestTimeout = 10 * time.Second
)

// ErrNotFound is returned when the API knows nothing about the video ID.
var ErrNotFound = errors.New("video not found")

// Video aggregates the metadata the processing daemon reads from the API.
type Video struct {
	ID              string
	Title           string
	Channel         string
	Description     string
	Duration        string // ISO 8601, e.g. "PT3M21S"
	Thumbnail       string // high-resolution thumbnail URL, "" if none
	LicensedContent bool
}

// Downloadable reports whether the video may be offered for download: content
// that is not marked licensed, or that declares a Creative Commons license in
// its description.
func (v *Video) Downloadable() bool {
	if !v.LicensedContent {
		return true
	}
	return strings.Contains(strings.ToLower(v.Description), "creative commons")
}

// videos.list response shapes for part=snippet,contentDetails.
type listResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID             string         `json:"id"`
	Snippet        snippet        `json:"snippet"`
	ContentDetails contentDetails `json:"contentDetails"`
}

type snippet struct {
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	Description  string     `json:"description"`
	Thumbnails   thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	High    *thumbnail `json:"high"`
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL string `json:"url"`
}

type contentDetails struct {
	Duration        string `json:"duration"`
	LicensedContent bool   `json:"licensedContent"`
}

// Client calls the YouTube Data API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a YouTube Data API client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// SetBaseURL overrides the API endpoint. Used in tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// GetVideo fetches snippet and content details for a video ID.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	query := url.Values{}
	query.Set("part", "snippet,contentDetails")
	query.Set("id", videoID)
	query.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/videos?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode youtube api response: %w", err)
	}
	if len(list.Items) == 0 {
		return nil, ErrNotFound
	}

	item := list.Items[0]
	thumb := ""
	if item.Snippet.Thumbnails.High != nil {
		thumb = item.Snippet.Thumbnails.High.URL
	} else if item.Snippet.Thumbnails.Default != nil {
		thumb = item.Snippet.Thumbnails.Default.URL
	}

	return &Video{
		ID:              item.ID,
		Title:           item.Snippet.Title,
		Channel:         item.Snippet.ChannelTitle,
		Description:     item.Snippet.Description,
		Duration:        item.ContentDetails.Duration,
		Thumbnail:       thumb,
		LicensedContent: item.ContentDetails.LicensedContent,
	}, nil
}
