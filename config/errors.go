// FILE: lixenwraith/natsort/config/errors.go
package config

import (
	"errors"
	"fmt"
)

// MaxValueSize bounds a single environment or flag value.
const MaxValueSize = 1 << 20

var (
	// ErrConfigNotFound is returned when the settings file does not exist.
	// Loading treats it as non-fatal: defaults and other sources still apply.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrUnknownFormat is returned for a file format other than toml, json or yaml
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrNotRegistered is returned when a path was never registered
	ErrNotRegistered = errors.New("path not registered")

	// ErrValueSize is returned for values larger than MaxValueSize
	ErrValueSize = fmt.Errorf("value exceeds maximum size of %d bytes", MaxValueSize)

	// ErrNoWatchFile is returned by Watch when no file has been loaded
	ErrNoWatchFile = errors.New("no configuration file to watch")
)
