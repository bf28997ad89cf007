package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyProcess        = "process"
	KeyEnterURL       = "enter_url"
	KeyProcessing     = "processing"
	KeyChannelPrefix  = "channel_prefix"
	KeyDurationPrefix = "duration_prefix"
	KeyAlbumPrefix    = "album_prefix"
	KeyDownload       = "download"
	KeyNoDownload     = "no_download"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyAPIBaseURL     = "api_base_url"
	KeyRequestTimeout = "request_timeout"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "TuneGrab",
		KeyProcess:        "Process",
		KeyEnterURL:       "Enter YouTube Music URL (https://music.youtube.com/watch?v=...)",
		KeyProcessing:     "Processing link...",
		KeyChannelPrefix:  "Channel",
		KeyDurationPrefix: "Duration",
		KeyAlbumPrefix:    "Album",
		KeyDownload:       "Download MP3",
		KeyNoDownload:     "Download not available for this track due to licensing restrictions.",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyAPIBaseURL:     "Processing Service URL",
		KeyRequestTimeout: "Request Timeout (seconds)",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "TuneGrab",
		KeyProcess:        "Обработать",
		KeyEnterURL:       "Введите ссылку YouTube Music (https://music.youtube.com/watch?v=...)",
		KeyProcessing:     "Обработка ссылки...",
		KeyChannelPrefix:  "Канал",
		KeyDurationPrefix: "Длительность",
		KeyAlbumPrefix:    "Альбом",
		KeyDownload:       "Скачать MP3",
		KeyNoDownload:     "Скачивание недоступно из-за лицензионных ограничений.",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyAPIBaseURL:     "Адрес сервиса обработки",
		KeyRequestTimeout: "Таймаут запроса (секунды)",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeySettingsSaved:  "Настройки сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "TuneGrab",
		KeyProcess:        "Processar",
		KeyEnterURL:       "Insira o link do YouTube Music (https://music.youtube.com/watch?v=...)",
		KeyProcessing:     "Processando link...",
		KeyChannelPrefix:  "Canal",
		KeyDurationPrefix: "Duração",
		KeyAlbumPrefix:    "Álbum",
		KeyDownload:       "Baixar MP3",
		KeyNoDownload:     "Download indisponível para esta faixa devido a restrições de licenciamento.",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyAPIBaseURL:     "URL do serviço de processamento",
		KeyRequestTimeout: "Tempo limite da requisição (segundos)",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeySettingsSaved:  "Configurações salvas!",
	}
}
