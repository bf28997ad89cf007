package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tunegrab/tunegrab/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are persisted so the caller can re-apply them.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.DefaultRequestTimeoutSec))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 280))
}

// loadCurrentSettings fills the form with the persisted values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.baseURLEntry.Text != "" {
		sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	}

	if sd.timeoutEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
			sd.settings.SetRequestTimeoutSeconds(seconds)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
