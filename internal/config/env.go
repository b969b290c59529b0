// Package config handles application settings backed by Fyne preferences and
// launch-time overrides from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds launch-time overrides read from the environment. They
// take precedence over stored preferences for one run without rewriting them.
type EnvOverrides struct {
	LogLevel    string `env:"TUBEGRAB_LOG_LEVEL" envDefault:"info"`
	DownloadDir string `env:"TUBEGRAB_DOWNLOAD_DIR" envDefault:""`
	MaxWorkers  int    `env:"TUBEGRAB_MAX_WORKERS" envDefault:"0"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (*EnvOverrides, error) {
	overrides := &EnvOverrides{}

	if err := env.Parse(overrides); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return overrides, nil
}

// Apply writes the non-empty overrides into settings.
func (e *EnvOverrides) Apply(settings *Settings) {
	if e.DownloadDir != "" {
		settings.SetDownloadDirectory(e.DownloadDir)
	}
	if e.MaxWorkers > 0 {
		settings.SetMaxParallelWorkers(e.MaxWorkers)
	}
}
