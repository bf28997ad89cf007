package youtube

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const listBody = `{
	"items": [{
		"id": "dQw4w9WgXcQ",
		"snippet": {
			"title": "Song",
			"channelTitle": "Artist",
			"description": "Provided to YouTube\n\nAlbum: Greatest Hits",
			"thumbnails": {
				"default": {"url": "http://img/default.jpg"},
				"high": {"url": "http://img/high.jpg"}
			}
		},
		"contentDetails": {
			"duration": "PT3M21S",
			"licensedContent": true
		}
	}]
}`

func TestClient_GetVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("Expected path /videos, got %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("part") != "snippet,contentDetails" {
			t.Errorf("Expected part snippet,contentDetails, got %s", query.Get("part"))
		}
		if query.Get("id") != "dQw4w9WgXcQ" {
			t.Errorf("Expected id dQw4w9WgXcQ, got %s", query.Get("id"))
		}
		if query.Get("key") != "test-key" {
			t.Errorf("Expected API key to be sent, got %s", query.Get("key"))
		}
		io.WriteString(w, listBody)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	video, err := client.GetVideo(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetVideo failed: %v", err)
	}

	if video.Title != "Song" {
		t.Errorf("Expected title 'Song', got '%s'", video.Title)
	}
	if video.Channel != "Artist" {
		t.Errorf("Expected channel 'Artist', got '%s'", video.Channel)
	}
	if video.Duration != "PT3M21S" {
		t.Errorf("Expected raw ISO duration, got '%s'", video.Duration)
	}
	if video.Thumbnail != "http://img/high.jpg" {
		t.Errorf("Expected high-resolution thumbnail, got '%s'", video.Thumbnail)
	}
	if !video.LicensedContent {
		t.Error("Expected licensed content flag to be set")
	}
}

func TestClient_GetVideo_FallsBackToDefaultThumbnail(t *testing.T) {
	body := `{
		"items": [{
			"id": "abc",
			"snippet": {
				"title": "Song",
				"channelTitle": "Artist",
				"thumbnails": {"default": {"url": "http://img/default.jpg"}}
			},
			"contentDetails": {"duration": "PT1M"}
		}]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	video, err := client.GetVideo(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetVideo failed: %v", err)
	}
	if video.Thumbnail != "http://img/default.jpg" {
		t.Errorf("Expected default thumbnail fallback, got '%s'", video.Thumbnail)
	}
}

func TestClient_GetVideo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items": []}`)
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	_, err := client.GetVideo(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestClient_GetVideo_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.SetBaseURL(server.URL)

	_, err := client.GetVideo(context.Background(), "abc")
	if err == nil {
		t.Error("Expected error for non-200 API response")
	}
}

func TestVideo_Downloadable(t *testing.T) {
	tests := []struct {
		name     string
		video    Video
		expected bool
	}{
		{"unlicensed content", Video{LicensedContent: false}, true},
		{"licensed content", Video{LicensedContent: true}, false},
		{
			"licensed but creative commons",
			Video{LicensedContent: true, Description: "Released under a Creative Commons license."},
			true,
		},
		{
			"case insensitive match",
			Video{LicensedContent: true, Description: "creative commons attribution"},
			true,
		},
	}

	for _, test := range tests {
		result := test.video.Downloadable()
		if result != test.expected {
			t.Errorf("%s: Downloadable() = %v, expected %v", test.name, result, test.expected)
		}
	}
}
