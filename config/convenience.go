// File: lixenwraith/natsort/config/convenience.go
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// GenerateFlags defines one flag per registered path on fs, typed after the
// default value. With no paths every registered path gets a flag. Paths that
// already have a flag on fs are skipped.
func (c *Config) GenerateFlags(fs *pflag.FlagSet, paths ...string) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if len(paths) == 0 {
		for path := range c.items {
			paths = append(paths, path)
		}
		slices.Sort(paths)
	}

	for _, path := range paths {
		item, ok := c.items[path]
		if !ok || fs.Lookup(path) != nil {
			continue
		}

		usage := item.usage
		if usage == "" {
			usage = fmt.Sprintf("Config: %s", path)
		}

		switch v := item.defaultValue.(type) {
		case bool:
			fs.Bool(path, v, usage)
		case int:
			fs.Int(path, v, usage)
		case int64:
			fs.Int64(path, v, usage)
		case float64:
			fs.Float64(path, v, usage)
		case string:
			fs.String(path, v, usage)
		default:
			fs.String(path, fmt.Sprintf("%v", v), usage)
		}
	}
}

// BindFlags records every flag changed on the command line as a SourceCLI
// value. Flags that do not name a registered path are ignored.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	var errs []string

	fs.Visit(func(f *pflag.Flag) {
		if _, registered := c.Get(f.Name); !registered {
			return
		}

		value := f.Value.String()
		if len(value) > MaxValueSize {
			errs = append(errs, fmt.Sprintf("flag %s: %v", f.Name, ErrValueSize))
			return
		}
		if err := c.SetSource(f.Name, SourceCLI, parseValue(value)); err != nil {
			errs = append(errs, fmt.Sprintf("flag %s: %v", f.Name, err))
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("failed to bind %d flag(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

// Debug returns every path with its resolved value and the value each
// source provided.
func (c *Config) Debug() string {
	paths := c.Paths()

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	fmt.Fprintf(&b, "Precedence: %v\n", c.options.Sources)
	if c.configFilePath != "" {
		fmt.Fprintf(&b, "File: %s\n", c.configFilePath)
	}
	b.WriteString("Current values:\n")

	for _, path := range paths {
		item := c.items[path]
		fmt.Fprintf(&b, "  %s:\n", path)
		fmt.Fprintf(&b, "    Current: %v\n", item.currentValue)
		fmt.Fprintf(&b, "    Default: %v\n", item.defaultValue)

		for _, source := range c.options.Sources {
			if v, ok := item.values[source]; ok {
				fmt.Fprintf(&b, "    %s: %v\n", source, v)
			}
		}
	}

	return b.String()
}
