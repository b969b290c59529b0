package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyURLsLabel          = "urls_label"
	KeyURLsPlaceholder    = "urls_placeholder"
	KeyDestination        = "destination"
	KeyBrowse             = "browse"
	KeyFormat             = "format"
	KeyFormatVideo        = "format_video"
	KeyFormatAudio        = "format_audio"
	KeyQuality            = "quality"
	KeyStartDownload      = "start_download"
	KeyDownloading        = "downloading"
	KeyLog                = "log"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOpenDownloadFolder = "open_download_folder"
	KeyDownloadDirectory  = "download_directory"
	KeyMaxParallel        = "max_parallel"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyNoURLs             = "no_urls"
	KeyNoValidURLs        = "no_valid_urls"
	KeySkippedURLs        = "skipped_urls"
	KeyBatchRunning       = "batch_running"
	KeyBatchFinished      = "batch_finished"
	KeySummaryHeader      = "summary_header"
	KeySummaryFailed      = "summary_failed"
	KeySettingsSaved      = "settings_saved"
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
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "TubeGrab",
		KeyURLsLabel:          "YouTube URLs (separate with commas, spaces or new lines):",
		KeyURLsPlaceholder:    "https://youtube.com/watch?v=...",
		KeyDestination:        "Destination folder:",
		KeyBrowse:             "Browse",
		KeyFormat:             "Format:",
		KeyFormatVideo:        "Video (MP4)",
		KeyFormatAudio:        "Audio (MP3)",
		KeyQuality:            "Quality:",
		KeyStartDownload:      "Start Download",
		KeyDownloading:        "Downloading...",
		KeyLog:                "Log:",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOpenDownloadFolder: "Open Download Folder",
		KeyDownloadDirectory:  "Download Directory:",
		KeyMaxParallel:        "Max Parallel Downloads:",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyNoURLs:             "Please enter at least one URL",
		KeyNoValidURLs:        "No valid YouTube URLs found",
		KeySkippedURLs:        "Skipped %d unsupported URL(s)",
		KeyBatchRunning:       "A download batch is already running",
		KeyBatchFinished:      "Download finished",
		KeySummaryHeader:      "Finished: %d of %d succeeded, %d failed",
		KeySummaryFailed:      "Failed URLs:",
		KeySettingsSaved:      "Settings saved successfully!",
	}

	l.texts["es"] = map[string]string{
		KeyAppTitle:           "TubeGrab",
		KeyURLsLabel:          "URLs de YouTube (separadas por comas, espacios o saltos de línea):",
		KeyURLsPlaceholder:    "https://youtube.com/watch?v=...",
		KeyDestination:        "Carpeta de destino:",
		KeyBrowse:             "Examinar",
		KeyFormat:             "Formato:",
		KeyFormatVideo:        "Video (MP4)",
		KeyFormatAudio:        "Audio (MP3)",
		KeyQuality:            "Calidad:",
		KeyStartDownload:      "Iniciar Descarga",
		KeyDownloading:        "Descargando...",
		KeyLog:                "Registro:",
		KeySettings:           "Configuración",
		KeyFile:               "Archivo",
		KeyLanguage:           "Idioma",
		KeyOpenDownloadFolder: "Abrir Carpeta de Descargas",
		KeyDownloadDirectory:  "Carpeta de descargas:",
		KeyMaxParallel:        "Descargas paralelas máximas:",
		KeySave:               "Guardar",
		KeyCancel:             "Cancelar",
		KeyNoURLs:             "Por favor, ingresa al menos una URL",
		KeyNoValidURLs:        "No se encontraron URLs de YouTube válidas",
		KeySkippedURLs:        "Se omitieron %d URL(s) no compatibles",
		KeyBatchRunning:       "Ya hay una descarga en curso",
		KeyBatchFinished:      "Descarga finalizada",
		KeySummaryHeader:      "Finalizado: %d de %d con éxito, %d con errores",
		KeySummaryFailed:      "URLs con errores:",
		KeySettingsSaved:      "¡Configuración guardada con éxito!",
	}
}
