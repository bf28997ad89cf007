package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultAPIBaseURL        = "http://localhost:8080"
	DefaultRequestTimeoutSec = 30
	MinRequestTimeoutSec     = 5
	MaxRequestTimeoutSec     = 120
	DefaultLanguage          = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured processing service base URL
func (s *Settings) GetAPIBaseURL() string {
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the processing service base URL
func (s *Settings) SetAPIBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetRequestTimeout returns the per-request deadline for processing calls
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request deadline in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
