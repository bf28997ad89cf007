package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/tunegrab/tunegrab/internal/model"
	"github.com/tunegrab/tunegrab/internal/platform"
	"github.com/tunegrab/tunegrab/internal/youtube"
)

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrBadLink    = errors.New("invalid link")
	ErrRestricted = errors.New("video is not licensed for download")
)

// VideoLookup resolves a video ID into its metadata.
type VideoLookup interface {
	GetVideo(ctx context.Context, videoID string) (*youtube.Video, error)
}

// Service resolves submitted links into processing results and produces mp3
// artifacts for downloadable items.
type Service struct {
	lookup VideoLookup
	cfg    *Config
	log    *slog.Logger
}

// NewService creates the processing service.
func NewService(lookup VideoLookup, cfg *Config, log *slog.Logger) *Service {
	return &Service{
		lookup: lookup,
		cfg:    cfg,
		log:    log,
	}
}

// ProcessLink resolves a link into the wire result: metadata plus a download
// URL when licensing allows one, null otherwise.
func (s *Service) ProcessLink(ctx context.Context, link string) (*model.ProcessResultDTO, error) {
	videoID, err := platform.ExtractVideoID(link)
	if err != nil {
		s.log.Warn("rejected link", slog.String("link", link), slog.String("reason", err.Error()))

		return nil, fmt.Errorf("%w: %s", ErrBadLink, err)
	}

	video, err := s.lookup.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	result := &model.ProcessResult{
		Metadata: model.Metadata{
			Title:     video.Title,
			Channel:   video.Channel,
			Duration:  platform.FormatISO8601Duration(video.Duration),
			Thumbnail: video.Thumbnail,
			Album:     platform.ExtractAlbum(video.Description),
		},
	}
	if video.Downloadable() {
		result.DownloadURL = s.downloadURL(videoID)
	}

	s.log.Info("resolved link",
		slog.String("videoID", videoID),
		slog.String("title", video.Title),
		slog.Bool("downloadable", video.Downloadable()))

	return model.NewProcessResultDTO(result), nil
}

// PrepareDownload verifies licensing and transcodes the video's audio to an
// mp3 file. The caller owns the returned path and removes it after streaming.
func (s *Service) PrepareDownload(ctx context.Context, videoID string) (string, error) {
	video, err := s.lookup.GetVideo(ctx, videoID)
	if err != nil {
		return "", err
	}
	if !video.Downloadable() {
		return "", ErrRestricted
	}

	outDir := filepath.Join(s.cfg.Download.Dir, "tunegrab-"+uuid.New().String())
	if err := platform.CreateDirectoryIfNotExists(outDir); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	dl := ytdlp.New().
		Format("bestaudio").
		ExtractAudio().
		AudioFormat("mp3").
		RestrictFilenames().
		Output(filepath.Join(outDir, videoID+".%(ext)s"))

	if _, err := dl.Run(ctx, platform.WatchURL(videoID)); err != nil {
		os.RemoveAll(outDir)
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	path := filepath.Join(outDir, videoID+".mp3")
	if _, err := os.Stat(path); err != nil {
		os.RemoveAll(outDir)
		return "", fmt.Errorf("audio artifact missing: %w", err)
	}

	s.log.Info("prepared download", slog.String("videoID", videoID), slog.String("path", path))

	return path, nil
}

// downloadURL builds the public download reference handed to clients.
func (s *Service) downloadURL(videoID string) string {
	base := strings.TrimRight(s.cfg.Server.PublicBaseURL, "/")
	return fmt.Sprintf("%s/download?v=%s", base, url.QueryEscape(videoID))
}
