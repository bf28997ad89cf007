package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/model"
	"github.com/tunegrab/tunegrab/internal/process"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	urlEntry   *widget.Entry
	processBtn *widget.Button
	progress   *widget.ProgressBarInfinite
	errorLabel *widget.Label
	resultCard *ResultCard

	service      *process.Service
	client       *process.Client
	settings     *config.Settings
	localization *Localization

	// lastSeq is the newest submission whose snapshot has been applied.
	// Snapshots are applied on the UI thread only, no locking needed.
	lastSeq uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, service *process.Service, client *process.Client) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		service:      service,
		client:       client,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized, endpoint: %s", settings.GetAPIBaseURL())

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Route state transitions from the process service into the widgets.
	ui.service.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	return ui
}

// setupUI builds the single page: link entry on top, outcome area below.
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = func(text string) {
		ui.service.SetInputText(text)
	}
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onProcessClick()
	}

	ui.processBtn = widget.NewButton(ui.localization.GetText(KeyProcess), ui.onProcessClick)
	ui.processBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)

	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.resultCard = NewResultCard(ui.localization)
	ui.resultCard.Hide()

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.processBtn, ui.urlEntry)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil,
		container.NewVBox(ui.progress, ui.errorLabel, ui.resultCard)))
}

// onProcessClick handles form submission. The entry text is forwarded as-is,
// empty string included; link validation is the processing service's concern.
func (ui *RootUI) onProcessClick() {
	ui.service.SetInputText(ui.urlEntry.Text)
	ui.service.Submit()
}

// onStateUpdate receives request state snapshots. It can be called from the
// request goroutine, so widget mutations are funneled through fyne.Do.
func (ui *RootUI) onStateUpdate(state model.RequestState) {
	fyne.Do(func() {
		ui.applyState(state)
	})
}

// applyState maps a request state snapshot onto the widgets. Exactly one of
// the error banner and the result card is visible once a submission settles.
func (ui *RootUI) applyState(state model.RequestState) {
	if state.Seq < ui.lastSeq {
		// Snapshot from a superseded submission.
		return
	}
	ui.lastSeq = state.Seq

	switch state.Phase {
	case model.PhasePending:
		ui.processBtn.Disable()
		ui.progress.Show()
		ui.errorLabel.Hide()
		ui.resultCard.Hide()
	case model.PhaseFailed:
		ui.processBtn.Enable()
		ui.progress.Hide()
		ui.errorLabel.SetText(state.ErrMessage)
		ui.errorLabel.Show()
		ui.resultCard.Hide()
	case model.PhaseSucceeded:
		ui.processBtn.Enable()
		ui.progress.Hide()
		ui.errorLabel.Hide()
		ui.resultCard.SetResult(state.Result)
		ui.resultCard.Show()
	default:
		ui.processBtn.Enable()
		ui.progress.Hide()
		ui.errorLabel.Hide()
		ui.resultCard.Hide()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes persisted settings into the running services
func (ui *RootUI) applySettings() {
	ui.client.SetBaseURL(ui.settings.GetAPIBaseURL())
	ui.service.SetRequestTimeout(ui.settings.GetRequestTimeout())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
}

// refreshUITexts updates all localized strings after a language change
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.processBtn.SetText(ui.localization.GetText(KeyProcess))
	ui.resultCard.refreshTexts()
}
