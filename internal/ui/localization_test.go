package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetCurrentLanguage(); got != "en" {
		t.Errorf("default language = %q, want en", got)
	}

	l.SetLanguage("es")
	if got := l.GetText(KeyStartDownload); got != "Iniciar Descarga" {
		t.Errorf("es start_download = %q", got)
	}

	// Unknown languages are ignored, unknown keys fall back to the key.
	l.SetLanguage("fr")
	if got := l.GetCurrentLanguage(); got != "es" {
		t.Errorf("unknown language switched current to %q", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key = %q, want the key itself", got)
	}
}

func TestLocalizationCoverage(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyURLsLabel, KeyDestination, KeyBrowse, KeyFormat,
		KeyQuality, KeyStartDownload, KeySettings, KeyLanguage,
		KeyOpenDownloadFolder, KeySummaryHeader, KeySettingsSaved,
	}

	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, key := range keys {
			if l.GetText(key) == key {
				t.Errorf("language %q missing text for %q", lang, key)
			}
		}
	}
}
