package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractVideoID extracts the YouTube video ID from the submitted link.
// Supported shapes: watch URLs carrying a "v" query parameter (youtube.com,
// music.youtube.com, m.youtube.com), youtu.be short links, and bare share
// paths where the ID is the last path segment.
func ExtractVideoID(link string) (string, error) {
	trimmed := strings.TrimSpace(link)
	if trimmed == "" {
		return "", fmt.Errorf("empty link")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}

	// youtu.be/<id>, /shorts/<id>, /embed/<id>: the ID is the last segment.
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "", fmt.Errorf("no video ID in link")
	}
	segments := strings.Split(path, "/")
	id := segments[len(segments)-1]
	if id == "" {
		return "", fmt.Errorf("no video ID in link")
	}
	return id, nil
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", url.QueryEscape(videoID))
}
