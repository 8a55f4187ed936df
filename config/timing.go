// FILE: lixenwraith/natsort/config/timing.go
package config

import "time"

// Timing defaults for the settings file watcher.
const (
	ShutdownTimeout      = 100 * time.Millisecond // Graceful watcher termination window
	DefaultDebounce      = 500 * time.Millisecond // File change coalescence period
	DefaultReloadTimeout = 5 * time.Second        // Maximum duration for reload operations
)

const (
	// subscriberBuffer is the capacity of each Watch channel
	subscriberBuffer = 10

	// debounceSettleMultiplier bounds how long tests wait for a reload
	debounceSettleMultiplier = 3
)
