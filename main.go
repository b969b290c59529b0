package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/tubegrab/tubegrab/internal/config"
	"github.com/tubegrab/tubegrab/internal/download"
	"github.com/tubegrab/tubegrab/internal/platform"
	"github.com/tubegrab/tubegrab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tubegrab.tubegrab"
	AppName = "TubeGrab"
)

func main() {
	overrides, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(overrides.LogLevel)
	log.Info().Str("version", version).Msg("starting")

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp)
	overrides.Apply(settings)

	downloadsDir := settings.DownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn().Err(err).Str("dir", downloadsDir).Msg("ensure downloads dir")
	}

	// Fetch the engine binary in the background. A system-installed yt-dlp
	// still works if this fails, so a failure only gets logged.
	go func() {
		if err := download.Install(context.Background()); err != nil {
			log.Warn().Err(err).Msg("engine install")
		}
	}()

	engine := download.NewYTDLPEngine(log)
	downloadSvc := download.NewService(engine, settings.MaxParallelWorkers(), log)

	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	ui.NewRootUI(fyneApp, window, settings, downloadSvc, log)

	window.ShowAndRun()
}

// newLogger builds the console logger used across the app.
func newLogger(level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(logLevel).
		With().Timestamp().Logger()
}
