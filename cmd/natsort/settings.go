package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/natsort/config"
	"github.com/lixenwraith/natsort/internal/logging"
	"github.com/spf13/cobra"
)

// keyPaths are the settings that shape key generation.
var keyPaths = []string{
	"number.kind",
	"number.signed",
	"number.exponent",
	"safe_mode",
	"transform",
	"max_depth",
}

// loadSettings builds the layered configuration for cmd. A missing discovered
// settings file is fine; a missing file named with --config is not.
func loadSettings(cmd *cobra.Command) (*config.Config, config.Settings, error) {
	cfg, err := config.NewSettingsBuilder().WithFlags(cmd.Flags()).Build()
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) || cmd.Flags().Changed("config") {
			return nil, config.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, config.Settings{}, err
	}
	return cfg, settings, nil
}

func newLogger(cmd *cobra.Command, settings config.Settings) *slog.Logger {
	return logging.NewLogger(settings.Log.Level, settings.Log.Format, cmd.ErrOrStderr())
}
