// Package server implements the link processing daemon: a gin HTTP API that
// resolves YouTube music links into metadata with an optional download
// reference, and streams transcoded mp3 audio for items whose licensing
// permits it.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/model"
	"github.com/tunegrab/tunegrab/internal/platform"
	"github.com/tunegrab/tunegrab/internal/youtube"
)

// Servicer is the processing surface the handlers depend on.
type Servicer interface {
	ProcessLink(ctx context.Context, link string) (*model.ProcessResultDTO, error)
	PrepareDownload(ctx context.Context, videoID string) (string, error)
}

// linkRequest is the body of both processing endpoints.
type linkRequest struct {
	URL string `json:"url"`
}

// detailResponse is the conventional error body: a single detail string the
// client shows verbatim.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Handler carries the HTTP handlers for the processing API.
type Handler struct {
	service Servicer
	log     *slog.Logger
}

// NewHandler creates the API handler set.
func NewHandler(service Servicer, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// NewRouter builds the gin engine for the processing API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/", h.Root)
	r.POST("/process-link", h.ProcessLink)
	r.POST("/download", h.Download)
	r.GET("/download", h.Download)

	return r
}

// Root answers a welcome message so probing the base URL is not a 404.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the TuneGrab processing API"})
}

// ProcessLink resolves the submitted link into metadata and an optional
// download reference.
func (h *Handler) ProcessLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("invalid request", slog.String("path", c.Request.URL.Path), slog.String("error", err.Error()))

		c.JSON(http.StatusBadRequest, detailResponse{Detail: "Invalid request body"})
		return
	}

	result, err := h.service.ProcessLink(c.Request.Context(), req.URL)
	if err != nil {
		h.log.Error("process link failed", slog.String("url", req.URL), slog.String("error", err.Error()))

		status, detail := statusForError(err)
		c.JSON(status, detailResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Download streams the transcoded mp3 for a downloadable video. The video is
// referenced either by the "v" query parameter (the shape of the download URL
// handed out by ProcessLink) or by a JSON body carrying the original link.
func (h *Handler) Download(c *gin.Context) {
	videoID := c.Query("v")
	if videoID == "" {
		var req linkRequest
		if err := c.ShouldBindJSON(&req); err == nil && req.URL != "" {
			videoID, _ = platform.ExtractVideoID(req.URL)
		}
	}
	if videoID == "" {
		c.JSON(http.StatusBadRequest, detailResponse{Detail: "Missing video reference"})
		return
	}

	path, err := h.service.PrepareDownload(c.Request.Context(), videoID)
	if err != nil {
		h.log.Error("download failed", slog.String("videoID", videoID), slog.String("error", err.Error()))

		status, detail := statusForError(err)
		c.JSON(status, detailResponse{Detail: detail})
		return
	}
	defer os.RemoveAll(filepath.Dir(path))

	c.FileAttachment(path, videoID+".mp3")
}

// statusForError maps service errors onto the API's status and detail contract.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadLink):
		return http.StatusBadRequest, "Invalid link"
	case errors.Is(err, youtube.ErrNotFound):
		return http.StatusNotFound, "Video not found"
	case errors.Is(err, ErrRestricted):
		return http.StatusForbidden, "Video is not licensed for download."
	default:
		return http.StatusBadGateway, "Failed to resolve link"
	}
}
