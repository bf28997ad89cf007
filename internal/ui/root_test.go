package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/model"
	"github.com/tunegrab/tunegrab/internal/process"
)

func newTestRootUI() *RootUI {
	app := test.NewApp()
	window := app.NewWindow("test")
	client := process.NewClient("http://localhost:1", process.DefaultRequestTimeout)
	service := process.NewService(client, process.DefaultRequestTimeout)
	return NewRootUI(window, config.NewSettings(app), service, client)
}

func TestRootUI_UsesProvidedSettings(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	settings.SetLanguage("ru")

	client := process.NewClient("http://localhost:1", process.DefaultRequestTimeout)
	service := process.NewService(client, process.DefaultRequestTimeout)
	ui := NewRootUI(window, settings, service, client)

	if ui.settings != settings {
		t.Error("RootUI must use the settings instance it was given")
	}
	if ui.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language from settings, got '%s'", ui.localization.GetCurrentLanguage())
	}
}

func TestRootUI_PendingState(t *testing.T) {
	ui := newTestRootUI()

	ui.applyState(model.RequestState{Phase: model.PhasePending, Seq: 1})

	if !ui.processBtn.Disabled() {
		t.Error("Process button should be disabled while a request is pending")
	}
	if ui.progress.Hidden {
		t.Error("Progress indicator should be visible while a request is pending")
	}
	if !ui.errorLabel.Hidden {
		t.Error("Error banner should be hidden while a request is pending")
	}
	if !ui.resultCard.Hidden {
		t.Error("Result card should be hidden while a request is pending")
	}
}

func TestRootUI_FailedState(t *testing.T) {
	ui := newTestRootUI()

	ui.applyState(model.RequestState{Phase: model.PhasePending, Seq: 1})
	ui.applyState(model.RequestState{
		Phase:      model.PhaseFailed,
		ErrMessage: "Invalid link",
		Seq:        1,
	})

	if ui.processBtn.Disabled() {
		t.Error("Process button should be enabled again after a failure")
	}
	if !ui.progress.Hidden {
		t.Error("Progress indicator should be hidden after a failure")
	}
	if ui.errorLabel.Hidden {
		t.Error("Error banner should be visible after a failure")
	}
	if ui.errorLabel.Text != "Invalid link" {
		t.Errorf("Expected error banner 'Invalid link', got '%s'", ui.errorLabel.Text)
	}
	if !ui.resultCard.Hidden {
		t.Error("Result card should be hidden after a failure")
	}
}

func TestRootUI_SucceededState(t *testing.T) {
	ui := newTestRootUI()

	ui.applyState(model.RequestState{Phase: model.PhasePending, Seq: 1})
	ui.applyState(model.RequestState{
		Phase: model.PhaseSucceeded,
		Result: &model.ProcessResult{
			Metadata:    model.Metadata{Title: "Song", Channel: "Artist"},
			DownloadURL: "http://dl/1.mp3",
		},
		Seq: 1,
	})

	if ui.processBtn.Disabled() {
		t.Error("Process button should be enabled again after success")
	}
	if !ui.errorLabel.Hidden {
		t.Error("Error banner should be hidden after success")
	}
	if ui.resultCard.Hidden {
		t.Error("Result card should be visible after success")
	}
	if ui.resultCard.titleLabel.Text != "Song" {
		t.Errorf("Expected rendered title 'Song', got '%s'", ui.resultCard.titleLabel.Text)
	}
}

func TestRootUI_SuccessReplacesError(t *testing.T) {
	ui := newTestRootUI()

	ui.applyState(model.RequestState{
		Phase:      model.PhaseFailed,
		ErrMessage: "An error occurred",
		Seq:        1,
	})
	ui.applyState(model.RequestState{Phase: model.PhasePending, Seq: 2})
	ui.applyState(model.RequestState{
		Phase:  model.PhaseSucceeded,
		Result: &model.ProcessResult{Metadata: model.Metadata{Title: "Song", Channel: "Artist"}},
		Seq:    2,
	})

	if !ui.errorLabel.Hidden {
		t.Error("Error banner from the previous submission should be hidden")
	}
	if ui.resultCard.Hidden {
		t.Error("Result card should be visible after the second submission succeeds")
	}
}

func TestRootUI_StaleSnapshotIgnored(t *testing.T) {
	ui := newTestRootUI()

	ui.applyState(model.RequestState{Phase: model.PhasePending, Seq: 2})
	ui.applyState(model.RequestState{
		Phase:      model.PhaseFailed,
		ErrMessage: "stale outcome",
		Seq:        1,
	})

	if !ui.errorLabel.Hidden {
		t.Error("Snapshot from a superseded submission should not surface an error")
	}
	if ui.progress.Hidden {
		t.Error("Progress from the live submission should stay visible")
	}
}
