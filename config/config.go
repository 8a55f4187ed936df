// FILE: lixenwraith/natsort/config/config.go
package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// configItem holds the default, the per-source values and the value resolved
// by precedence for one path.
type configItem struct {
	defaultValue any
	currentValue any
	values       map[Source]any
	usage        string
}

// Config manages settings loaded from defaults, a file, the environment and
// command-line flags. It is safe for concurrent use.
type Config struct {
	items          map[string]configItem
	mutex          sync.RWMutex
	options        LoadOptions
	tagName        string
	fileFormat     string
	configFilePath string
	watcher        *watcher
}

// New creates a Config with the default load options.
func New() *Config {
	return NewWithOptions(DefaultLoadOptions())
}

// NewWithOptions creates a Config with custom load options.
func NewWithOptions(opts LoadOptions) *Config {
	return &Config{
		items:      make(map[string]configItem),
		options:    opts,
		tagName:    "toml",
		fileFormat: "auto",
	}
}

// SetFileFormat forces the format used by LoadFile: "toml", "json", "yaml",
// or "auto" to detect by extension and then content.
func (c *Config) SetFileFormat(format string) error {
	format = strings.ToLower(format)
	switch format {
	case "toml", "json", "yaml", "auto":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.fileFormat = format
	return nil
}

// Get returns the resolved value of path and whether the path is registered.
func (c *Config) Get(path string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil, false
	}
	return item.currentValue, true
}

// Set replaces the default value of path. Values from other sources still
// take precedence over it.
func (c *Config) Set(path string, value any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, registered := c.items[path]
	if !registered {
		return fmt.Errorf("%w: %s", ErrNotRegistered, path)
	}
	item.defaultValue = value
	item.currentValue = c.computeValue(item)
	c.items[path] = item
	return nil
}

// SetSource records value for path as coming from source.
func (c *Config) SetSource(path string, source Source, value any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, registered := c.items[path]
	if !registered {
		return fmt.Errorf("%w: %s", ErrNotRegistered, path)
	}
	if source == SourceDefault {
		item.defaultValue = value
	} else {
		if item.values == nil {
			item.values = make(map[Source]any)
		}
		item.values[source] = value
	}
	item.currentValue = c.computeValue(item)
	c.items[path] = item
	return nil
}

// GetSource returns the value path received from one source.
func (c *Config) GetSource(path string, source Source) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil, false
	}
	if source == SourceDefault {
		return item.defaultValue, true
	}
	v, ok := item.values[source]
	return v, ok
}

// GetSources returns every non-default value recorded for path.
func (c *Config) GetSources(path string) map[Source]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil
	}
	return maps.Clone(item.values)
}

// ResetSource drops every value recorded from source.
func (c *Config) ResetSource(source Source) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, item := range c.items {
		delete(item.values, source)
		item.currentValue = c.computeValue(item)
		c.items[path] = item
	}
}

// Paths returns the registered paths in sorted order.
func (c *Config) Paths() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return slices.Sorted(maps.Keys(c.items))
}

// computeValue walks the configured precedence and returns the first value
// present. Caller must hold the mutex.
func (c *Config) computeValue(item configItem) any {
	for _, source := range c.options.Sources {
		if source == SourceDefault {
			return item.defaultValue
		}
		if v, ok := item.values[source]; ok {
			return v
		}
	}
	return item.defaultValue
}

// snapshot copies the resolved values.
func (c *Config) snapshot() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snapshot := make(map[string]any, len(c.items))
	for path, item := range c.items {
		snapshot[path] = item.currentValue
	}
	return snapshot
}

// nested builds the dotted paths into a tree. With source empty the resolved
// values are used. Caller must hold the mutex.
func (c *Config) nested(source Source) map[string]any {
	out := make(map[string]any)
	for path, item := range c.items {
		switch source {
		case "":
			setNestedValue(out, path, item.currentValue)
		case SourceDefault:
			setNestedValue(out, path, item.defaultValue)
		default:
			if v, ok := item.values[source]; ok {
				setNestedValue(out, path, v)
			}
		}
	}
	return out
}
