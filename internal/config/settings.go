package config

import (
	"fyne.io/fyne/v2"

	"github.com/tubegrab/tubegrab/internal/model"
	"github.com/tubegrab/tubegrab/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyMaxWorkers  = "max_workers"
	KeyFormat      = "format"
	KeyQuality     = "quality"
	KeyLanguage    = "app_language"
)

// Default values
const (
	// DefaultMaxWorkers is the explicit concurrency cap: a batch of N URLs
	// runs on min(N, cap) workers.
	DefaultMaxWorkers = 4

	MinWorkers = 1
	MaxWorkers = 8

	DefaultLanguage = "en"
)

// Quality catalogs per format
var (
	VideoQualities = []string{"1080p", "720p", "480p", "360p", "240p"}
	AudioQualities = []string{"320kbps", "256kbps", "192kbps", "128kbps", "64kbps"}
)

// Per-format default qualities
const (
	DefaultVideoQuality = "1080p"
	DefaultAudioQuality = "192kbps"
)

// QualityOptions returns the quality catalog for a format.
func QualityOptions(format model.Format) []string {
	if format == model.FormatAudio {
		return AudioQualities
	}
	return VideoQualities
}

// DefaultQuality returns the default quality for a format.
func DefaultQuality(format model.Format) string {
	if format == model.FormatAudio {
		return DefaultAudioQuality
	}
	return DefaultVideoQuality
}

// IsValidQuality reports whether a quality belongs to the format's catalog.
func IsValidQuality(format model.Format, quality string) bool {
	for _, q := range QualityOptions(format) {
		if q == quality {
			return true
		}
	}
	return false
}

// Settings manages application configuration backed by Fyne preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// DownloadDirectory returns the configured destination directory.
func (s *Settings) DownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.DefaultDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the destination directory.
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// MaxParallelWorkers returns the worker cap for a batch.
func (s *Settings) MaxParallelWorkers() int {
	value := s.app.Preferences().Int(KeyMaxWorkers)
	if value <= 0 {
		s.SetMaxParallelWorkers(DefaultMaxWorkers)
		return DefaultMaxWorkers
	}
	return value
}

// SetMaxParallelWorkers sets the worker cap, clamped to [MinWorkers, MaxWorkers].
func (s *Settings) SetMaxParallelWorkers(count int) {
	if count < MinWorkers {
		count = MinWorkers
	}
	if count > MaxWorkers {
		count = MaxWorkers
	}
	s.app.Preferences().SetInt(KeyMaxWorkers, count)
}

// Format returns the last-used download format.
func (s *Settings) Format() model.Format {
	return model.ParseFormat(s.app.Preferences().StringWithFallback(KeyFormat, string(model.FormatVideo)))
}

// SetFormat stores the selected format.
func (s *Settings) SetFormat(format model.Format) {
	s.app.Preferences().SetString(KeyFormat, string(format))
}

// Quality returns the last-used quality for the current format. A stored
// value from the other format's catalog is discarded.
func (s *Settings) Quality() string {
	format := s.Format()
	quality := s.app.Preferences().String(KeyQuality)
	if !IsValidQuality(format, quality) {
		quality = DefaultQuality(format)
		s.SetQuality(quality)
	}
	return quality
}

// SetQuality stores the selected quality.
func (s *Settings) SetQuality(quality string) {
	s.app.Preferences().SetString(KeyQuality, quality)
}

// Language returns the configured UI language.
func (s *Settings) Language() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language.
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
