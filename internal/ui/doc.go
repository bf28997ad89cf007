package ui

// Package ui contains the Fyne-based desktop user interface: the single page
// that accepts a media link, hands it to the process service, and renders the
// settled result or error. All UI strings are localized via Localization.
