package ui

import (
	"io"
	"net/http"
	"path"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

const (
	// ThumbnailFetchTimeout bounds a single thumbnail download.
	ThumbnailFetchTimeout = 15 * time.Second

	// MaxThumbnailBytes caps how much image data is read.
	MaxThumbnailBytes = 4 << 20
)

// ThumbnailLoader fetches thumbnail images off the UI thread. Only the most
// recently requested image is ever applied; an earlier fetch still in flight
// is invalidated by the next Load call.
type ThumbnailLoader struct {
	client *http.Client

	mu    sync.Mutex
	token uint64
}

// NewThumbnailLoader creates a loader with its own bounded HTTP client.
func NewThumbnailLoader() *ThumbnailLoader {
	return &ThumbnailLoader{
		client: &http.Client{
			Timeout: ThumbnailFetchTimeout,
		},
	}
}

// Load fetches the image at rawURL and hands the resource to apply on the UI
// thread. Fetch failures are silent; the thumbnail row simply stays hidden.
func (l *ThumbnailLoader) Load(rawURL string, apply func(fyne.Resource)) {
	l.mu.Lock()
	l.token++
	token := l.token
	l.mu.Unlock()

	go func() {
		resp, err := l.client.Get(rawURL)
		if err != nil {
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, MaxThumbnailBytes))
		if err != nil || len(data) == 0 {
			return
		}

		resource := fyne.NewStaticResource(path.Base(rawURL), data)
		fyne.Do(func() {
			// The token can move between queueing and running this closure,
			// so staleness is decided here, on the UI thread.
			l.mu.Lock()
			current := l.token == token
			l.mu.Unlock()
			if current {
				apply(resource)
			}
		})
	}()
}

// Invalidate drops any fetch still in flight without starting a new one.
func (l *ThumbnailLoader) Invalidate() {
	l.mu.Lock()
	l.token++
	l.mu.Unlock()
}
