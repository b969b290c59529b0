package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tubegrab/tubegrab/internal/config"
)

// SettingsDialog edits the persistent preferences: download directory,
// worker cap, language.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	downloadDirEntry *widget.Entry
	maxParallelEntry *widget.Entry
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save so the caller can apply the new values.
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
	sd.downloadDirEntry = widget.NewEntry()

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder(
		strconv.Itoa(config.MinWorkers) + "-" + strconv.Itoa(config.MaxWorkers))

	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(sd.localization.GetText(KeyMaxParallel)),
		sd.maxParallelEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
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

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.DownloadDirectory())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.MaxParallelWorkers()))
	sd.languageSelect.SetSelected(sd.settings.Language())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if text := sd.maxParallelEntry.Text; text != "" {
		if count, err := strconv.Atoi(text); err == nil {
			sd.settings.SetMaxParallelWorkers(count)
		}
	}

	if lang := sd.languageSelect.Selected; lang != "" {
		sd.settings.SetLanguage(lang)
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
