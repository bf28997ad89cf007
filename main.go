package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/process"
	"github.com/tunegrab/tunegrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tunegrab.tunegrab"
	AppName = "TuneGrab"

	WindowWidth  = 520
	WindowHeight = 480
)

func main() {
	// Log version information
	fmt.Printf("TuneGrab v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := process.NewClient(settings.GetAPIBaseURL(), settings.GetRequestTimeout())
	processSvc := process.NewService(client, settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, processSvc, client)

	// Show and run
	myWindow.ShowAndRun()
}
