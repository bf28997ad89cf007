package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/model"
	"github.com/tunegrab/tunegrab/internal/youtube"
)

type fakeService struct {
	result       *model.ProcessResultDTO
	processErr   error
	downloadPath string
	downloadErr  error
	gotLink      string
	gotVideoID   string
}

func (f *fakeService) ProcessLink(ctx context.Context, link string) (*model.ProcessResultDTO, error) {
	f.gotLink = link
	return f.result, f.processErr
}

func (f *fakeService) PrepareDownload(ctx context.Context, videoID string) (string, error) {
	f.gotVideoID = videoID
	return f.downloadPath, f.downloadErr
}

func newTestRouter(service Servicer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(service, discardLogger()))
}

func TestHandler_ProcessLink_Success(t *testing.T) {
	duration := "3:21"
	downloadURL := "http://localhost:8080/download?v=abc"
	service := &fakeService{result: &model.ProcessResultDTO{
		Metadata: model.MetadataDTO{
			Title:    "Song",
			Channel:  "Artist",
			Duration: &duration,
		},
		DownloadURL: &downloadURL,
	}}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/process-link",
		strings.NewReader(`{"url":"https://music.example/track/1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if service.gotLink != "https://music.example/track/1" {
		t.Errorf("Link not forwarded verbatim, service saw '%s'", service.gotLink)
	}

	var dto model.ProcessResultDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Metadata.Title != "Song" || dto.DownloadURL == nil {
		t.Errorf("Unexpected response: %s", w.Body.String())
	}
	if dto.Metadata.Thumbnail != nil {
		t.Error("Absent thumbnail must encode as null")
	}
}

func TestHandler_ProcessLink_EmptyLinkReachesService(t *testing.T) {
	service := &fakeService{processErr: ErrBadLink}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/process-link", strings.NewReader(`{"url":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty link, got %d", w.Code)
	}

	var resp detailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail != "Invalid link" {
		t.Errorf("Expected detail 'Invalid link', got '%s'", resp.Detail)
	}
}

func TestHandler_ProcessLink_NotFound(t *testing.T) {
	service := &fakeService{processErr: youtube.ErrNotFound}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/process-link",
		strings.NewReader(`{"url":"https://youtu.be/missing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Video not found") {
		t.Errorf("Expected 'Video not found' detail, got %s", w.Body.String())
	}
}

func TestHandler_Download_Restricted(t *testing.T) {
	service := &fakeService{downloadErr: ErrRestricted}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/download?v=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if service.gotVideoID != "abc" {
		t.Errorf("Expected video ID 'abc', got '%s'", service.gotVideoID)
	}
}

func TestHandler_Download_BodyLink(t *testing.T) {
	service := &fakeService{downloadErr: youtube.ErrNotFound}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/download",
		strings.NewReader(`{"url":"https://youtu.be/xyz"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if service.gotVideoID != "xyz" {
		t.Errorf("Expected video ID extracted from body link, got '%s'", service.gotVideoID)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestHandler_Download_MissingReference(t *testing.T) {
	router := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing reference, got %d", w.Code)
	}
}

func TestHandler_Download_StreamsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifact")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "abc.mp3")
	if err := os.WriteFile(path, []byte("mp3-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	service := &fakeService{downloadPath: path}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/download?v=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if w.Body.String() != "mp3-bytes" {
		t.Errorf("Expected file contents streamed, got %q", w.Body.String())
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "abc.mp3") {
		t.Errorf("Expected attachment disposition with filename, got %q", disposition)
	}

	// The artifact directory is removed after streaming.
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected artifact directory to be cleaned up")
	}
}
