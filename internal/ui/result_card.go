package ui

import (
	"fmt"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tunegrab/tunegrab/internal/model"
)

// Thumbnail display sizing
const (
	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180
)

// ResultCard renders a settled processing result: title and channel always,
// duration/album rows and the thumbnail only when the backend supplied them,
// and either a download link or the licensing restriction notice.
type ResultCard struct {
	widget.BaseWidget

	localization *Localization
	thumbnails   *ThumbnailLoader

	// UI components
	titleLabel       *widget.Label
	channelLabel     *widget.Label
	durationLabel    *widget.Label
	albumLabel       *widget.Label
	thumbnailImage   *canvas.Image
	downloadLink     *widget.Hyperlink
	restrictionLabel *widget.Label

	content *fyne.Container
}

// NewResultCard creates an empty, hidden result card
func NewResultCard(localization *Localization) *ResultCard {
	rc := &ResultCard{
		localization: localization,
		thumbnails:   NewThumbnailLoader(),
	}
	rc.ExtendBaseWidget(rc)
	rc.createUI()
	return rc
}

// createUI creates the card widgets
func (rc *ResultCard) createUI() {
	rc.titleLabel = widget.NewLabel("")
	rc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rc.titleLabel.Wrapping = fyne.TextWrapWord

	rc.channelLabel = widget.NewLabel("")
	rc.durationLabel = widget.NewLabel("")
	rc.albumLabel = widget.NewLabel("")

	rc.thumbnailImage = canvas.NewImageFromResource(nil)
	rc.thumbnailImage.FillMode = canvas.ImageFillContain
	rc.thumbnailImage.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	rc.thumbnailImage.Hide()

	rc.downloadLink = widget.NewHyperlink(rc.localization.GetText(KeyDownload), nil)
	rc.downloadLink.Hide()

	rc.restrictionLabel = widget.NewLabel(rc.localization.GetText(KeyNoDownload))
	rc.restrictionLabel.Wrapping = fyne.TextWrapWord
	rc.restrictionLabel.TextStyle = fyne.TextStyle{Italic: true}
	rc.restrictionLabel.Hide()

	rc.content = container.NewVBox(
		rc.thumbnailImage,
		rc.titleLabel,
		rc.channelLabel,
		rc.durationLabel,
		rc.albumLabel,
		rc.downloadLink,
		rc.restrictionLabel,
	)
}

// SetResult updates the card from a settled result. Optional attributes hide
// their rows entirely when absent; absence is normal, not an error.
func (rc *ResultCard) SetResult(result *model.ProcessResult) {
	if result == nil {
		log.Printf("Warning: SetResult called with nil result")
		return
	}

	rc.titleLabel.SetText(result.Metadata.Title)
	rc.channelLabel.SetText(fmt.Sprintf("%s: %s",
		rc.localization.GetText(KeyChannelPrefix), result.Metadata.Channel))

	if result.Metadata.Duration != "" {
		rc.durationLabel.SetText(fmt.Sprintf("%s: %s",
			rc.localization.GetText(KeyDurationPrefix), result.Metadata.Duration))
		rc.durationLabel.Show()
	} else {
		rc.durationLabel.Hide()
	}

	if result.Metadata.Album != "" {
		rc.albumLabel.SetText(fmt.Sprintf("%s: %s",
			rc.localization.GetText(KeyAlbumPrefix), result.Metadata.Album))
		rc.albumLabel.Show()
	} else {
		rc.albumLabel.Hide()
	}

	rc.thumbnailImage.Hide()
	if result.Metadata.Thumbnail != "" {
		rc.thumbnails.Load(result.Metadata.Thumbnail, rc.applyThumbnail)
	} else {
		rc.thumbnails.Invalidate()
	}

	if result.Downloadable() {
		if target, err := url.Parse(result.DownloadURL); err == nil {
			rc.downloadLink.SetURL(target)
			rc.downloadLink.Show()
			rc.restrictionLabel.Hide()
		} else {
			log.Printf("Invalid download URL %q: %v", result.DownloadURL, err)
			rc.downloadLink.Hide()
			rc.restrictionLabel.Show()
		}
	} else {
		rc.downloadLink.Hide()
		rc.restrictionLabel.Show()
	}

	rc.Refresh()
}

// applyThumbnail swaps in the fetched image. Runs on the UI thread.
func (rc *ResultCard) applyThumbnail(resource fyne.Resource) {
	rc.thumbnailImage.Resource = resource
	rc.thumbnailImage.Show()
	rc.thumbnailImage.Refresh()
}

// refreshTexts re-applies localized strings after a language change
func (rc *ResultCard) refreshTexts() {
	rc.downloadLink.SetText(rc.localization.GetText(KeyDownload))
	rc.restrictionLabel.SetText(rc.localization.GetText(KeyNoDownload))
}

// CreateRenderer implements fyne.Widget
func (rc *ResultCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rc.content)
}
