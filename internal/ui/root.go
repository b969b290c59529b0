package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/tubegrab/tubegrab/internal/config"
	"github.com/tubegrab/tubegrab/internal/download"
	"github.com/tubegrab/tubegrab/internal/model"
	"github.com/tubegrab/tubegrab/internal/platform"
)

// RootUI is the main window: the batch form on top, the log view below.
type RootUI struct {
	app    fyne.App
	window fyne.Window
	log    zerolog.Logger

	settings     *config.Settings
	localization *Localization
	downloadSvc  download.Dispatcher

	urlEntry      *widget.Entry
	urlLabel      *widget.Label
	destEntry     *widget.Entry
	destLabel     *widget.Label
	browseBtn     *widget.Button
	formatRadio   *widget.RadioGroup
	formatLabel   *widget.Label
	qualitySelect *widget.Select
	qualityLabel  *widget.Label
	startBtn      *widget.Button
	progressBar   *widget.ProgressBar
	logLabel      *widget.Label
	logView       *widget.Label

	// Batch progress, only touched from the event consumer goroutine.
	batchTotal int
	batchDone  int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, downloadSvc download.Dispatcher, log zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.Language())

	ui := &RootUI{
		app:          app,
		window:       window,
		log:          log,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	go ui.consumeEvents()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURLsLabel))
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLsPlaceholder))
	ui.urlEntry.SetMinRowsVisible(URLEntryMinRows)

	ui.destLabel = widget.NewLabel(ui.localization.GetText(KeyDestination))
	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetText(ui.settings.DownloadDirectory())
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDestination)
	destRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.destEntry)

	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyFormat))
	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	ui.qualitySelect = widget.NewSelect(config.QualityOptions(ui.settings.Format()), func(selected string) {
		ui.settings.SetQuality(selected)
	})
	ui.qualitySelect.SetSelected(ui.settings.Quality())

	ui.formatRadio = widget.NewRadioGroup(
		[]string{ui.localization.GetText(KeyFormatVideo), ui.localization.GetText(KeyFormatAudio)},
		ui.onFormatChange,
	)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.SetSelected(ui.formatLabelFor(ui.settings.Format()))

	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStartDownload), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()

	ui.logLabel = widget.NewLabel(ui.localization.GetText(KeyLog))
	ui.logView = widget.NewLabel("")
	ui.logView.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		ui.urlLabel,
		ui.urlEntry,
		ui.destLabel,
		destRow,
		container.NewHBox(ui.formatLabel, ui.formatRadio),
		container.NewBorder(nil, nil, ui.qualityLabel, nil, ui.qualitySelect),
		ui.startBtn,
		ui.progressBar,
		ui.logLabel,
	)

	content := container.NewBorder(form, nil, nil, nil, container.NewScroll(ui.logView))
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenDownloadFolder), ui.onOpenDownloadFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openFolderItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlLabel.SetText(ui.localization.GetText(KeyURLsLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLsPlaceholder))
	ui.destLabel.SetText(ui.localization.GetText(KeyDestination))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.formatLabel.SetText(ui.localization.GetText(KeyFormat))
	ui.qualityLabel.SetText(ui.localization.GetText(KeyQuality))
	ui.logLabel.SetText(ui.localization.GetText(KeyLog))

	selected := ui.settings.Format()
	ui.formatRadio.Options = []string{
		ui.localization.GetText(KeyFormatVideo),
		ui.localization.GetText(KeyFormatAudio),
	}
	ui.formatRadio.SetSelected(ui.formatLabelFor(selected))
	ui.formatRadio.Refresh()

	if !ui.downloadSvc.Running() {
		ui.startBtn.SetText(ui.localization.GetText(KeyStartDownload))
	}
}

// formatLabelFor returns the radio label for a format in the current language.
func (ui *RootUI) formatLabelFor(format model.Format) string {
	if format == model.FormatAudio {
		return ui.localization.GetText(KeyFormatAudio)
	}
	return ui.localization.GetText(KeyFormatVideo)
}

// selectedFormat maps the radio selection back to a format.
func (ui *RootUI) selectedFormat() model.Format {
	if ui.formatRadio.Selected == ui.localization.GetText(KeyFormatAudio) {
		return model.FormatAudio
	}
	return model.FormatVideo
}

// onFormatChange swaps the quality catalog when the format changes. The
// previous format's selection is never carried over.
func (ui *RootUI) onFormatChange(string) {
	format := ui.selectedFormat()
	ui.settings.SetFormat(format)

	ui.qualitySelect.Options = config.QualityOptions(format)
	ui.qualitySelect.SetSelected(ui.settings.Quality())
	ui.qualitySelect.Refresh()
}

// onBrowseDestination opens the folder picker for the destination row.
func (ui *RootUI) onBrowseDestination() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
	}, ui.window)
}

// onShowSettings opens the settings dialog.
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.downloadSvc.SetMaxWorkers(ui.settings.MaxParallelWorkers())
		ui.destEntry.SetText(ui.settings.DownloadDirectory())
	}).Show()
}

// onOpenDownloadFolder opens the destination directory in the OS file manager.
func (ui *RootUI) onOpenDownloadFolder() {
	dir := ui.destEntry.Text
	if dir == "" {
		dir = ui.settings.DownloadDirectory()
	}
	if err := platform.OpenDirectory(dir); err != nil {
		ui.log.Error().Err(err).Str("dir", dir).Msg("open download folder")
		dialog.ShowError(err, ui.window)
	}
}

// onStartClick splits and validates the entered URLs, then hands the batch
// to the download service.
func (ui *RootUI) onStartClick() {
	urls := platform.SplitURLList(ui.urlEntry.Text)
	if len(urls) == 0 {
		ui.appendLog(ui.localization.GetText(KeyNoURLs))
		return
	}

	valid, skipped := platform.FilterSupportedURLs(urls)
	if skipped > 0 {
		ui.appendLog(fmt.Sprintf(ui.localization.GetText(KeySkippedURLs), skipped))
	}
	if len(valid) == 0 {
		ui.appendLog(ui.localization.GetText(KeyNoValidURLs))
		return
	}

	destination := ui.destEntry.Text
	if destination == "" {
		destination = ui.settings.DownloadDirectory()
		ui.destEntry.SetText(destination)
	}
	if err := platform.CreateDirectoryIfNotExists(destination); err != nil {
		ui.log.Error().Err(err).Str("dir", destination).Msg("create destination")
		dialog.ShowError(err, ui.window)
		return
	}
	ui.settings.SetDownloadDirectory(destination)

	format := ui.selectedFormat()
	quality := ui.qualitySelect.Selected
	if quality == "" {
		quality = config.DefaultQuality(format)
	}

	requests := make([]model.DownloadRequest, 0, len(valid))
	for _, url := range valid {
		requests = append(requests, model.DownloadRequest{
			URL:         url,
			Format:      format,
			Quality:     quality,
			Destination: destination,
		})
	}

	if err := ui.downloadSvc.Start(context.Background(), requests); err != nil {
		ui.log.Error().Err(err).Msg("start batch")
		if ui.downloadSvc.Running() {
			ui.appendLog(ui.localization.GetText(KeyBatchRunning))
		} else {
			ui.appendLog(err.Error())
		}
		return
	}

	ui.startBtn.Disable()
	ui.startBtn.SetText(ui.localization.GetText(KeyDownloading))
}

// consumeEvents is the single reader of the download service's event
// channel. Every widget mutation goes through fyne.Do so workers never touch
// the UI thread directly. The per-batch counters live here too: batches
// arrive in channel order, so a lagging consumer still finishes the old
// batch before it starts counting the next one.
func (ui *RootUI) consumeEvents() {
	for ev := range ui.downloadSvc.Events() {
		switch ev.Kind {
		case download.EventBatchStart:
			ui.batchTotal = ev.Total
			ui.batchDone = 0
			fyne.Do(func() {
				ui.progressBar.SetValue(0)
				ui.startBtn.SetText(ui.localization.GetText(KeyDownloading))
				ui.startBtn.Disable()
			})

		case download.EventLog:
			line := ev.Line
			fyne.Do(func() { ui.appendLog(line) })

		case download.EventResult:
			ui.batchDone++
			done, total := ui.batchDone, ui.batchTotal
			fyne.Do(func() {
				if total > 0 {
					ui.progressBar.SetValue(float64(done) / float64(total))
				}
			})

		case download.EventSummary:
			summary := ev.Summary
			fyne.Do(func() { ui.onBatchFinished(summary) })

		case download.EventTask:
			// Task snapshots are already mirrored as log lines; nothing
			// extra to render in the log-oriented layout.
		}
	}
}

// onBatchFinished re-enables the form and reports the batch outcome.
func (ui *RootUI) onBatchFinished(summary model.BatchSummary) {
	ui.progressBar.SetValue(1)
	ui.startBtn.SetText(ui.localization.GetText(KeyStartDownload))
	ui.startBtn.Enable()

	ui.appendLog(fmt.Sprintf(ui.localization.GetText(KeySummaryHeader),
		summary.Succeeded, summary.Total, summary.Failed))

	if failed := summary.FailedResults(); len(failed) > 0 {
		ui.appendLog(ui.localization.GetText(KeySummaryFailed))
		for _, result := range failed {
			ui.appendLog("  " + result.URL)
		}
	}

	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyBatchFinished),
		fmt.Sprintf(ui.localization.GetText(KeySummaryHeader),
			summary.Succeeded, summary.Total, summary.Failed),
	))
}

// appendLog appends one line to the log view. Must run on the UI thread.
func (ui *RootUI) appendLog(line string) {
	if ui.logView.Text == "" {
		ui.logView.SetText(line)
		return
	}
	ui.logView.SetText(ui.logView.Text + "\n" + line)
}
