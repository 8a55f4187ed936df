// File: lixenwraith/natsort/config/doc.go

// Package config provides thread-safe settings management for natsort with
// support for multiple sources: TOML, JSON or YAML files, environment
// variables, command-line flags, and default values with configurable
// precedence.
//
// Features:
//   - Multiple configuration sources with customizable precedence
//   - Thread-safe operations using sync.RWMutex
//   - Struct registration with `toml` tags and weakly typed decoding (Scan)
//   - pflag integration: GenerateFlags and BindFlags
//   - File discovery through a flag, an environment variable, the current
//     directory and XDG directories
//   - Source tracking to see where values originated (Debug)
//   - File watching with fsnotify, debounced reloads and change notification
//
// Quick Start:
//
//	cfg, err := config.NewSettingsBuilder().
//	    WithFlags(cmd.Flags()).
//	    Build()
//	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
//	    return err
//	}
//
//	settings, err := cfg.Settings()
//	opts, err := settings.Options()
//
// Default Precedence (highest to lowest):
//  1. Command-line flags (--number.kind=int)
//  2. Environment variables (NATSORT_NUMBER_KIND=int)
//  3. Configuration file (natsort.toml)
//  4. Default values
//
// A settings file:
//
//	safe_mode = true
//	transform = "fold"
//
//	[number]
//	kind = "none"
//
// Thread Safety:
// All operations are thread-safe. The package uses read-write mutexes to allow
// concurrent reads while protecting writes.
package config
