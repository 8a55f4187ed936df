// FILE: lixenwraith/natsort/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source names where a value came from. Sources are ordered by LoadOptions.Sources.
type Source string

const (
	// SourceDefault is the value given at registration
	SourceDefault Source = "default"
	// SourceFile is a value read from the settings file
	SourceFile Source = "file"
	// SourceEnv is a value read from the process environment
	SourceEnv Source = "env"
	// SourceCLI is a value set by a command-line flag
	SourceCLI Source = "cli"
)

// EnvTransformFunc maps a dotted path such as "number.kind" to a variable name
type EnvTransformFunc func(path string) string

// LoadOptions controls source precedence and environment lookup
type LoadOptions struct {
	// Sources lists sources from highest to lowest priority.
	// DefaultLoadOptions uses cli, env, file, default.
	Sources []Source

	// EnvPrefix is prepended by the default transform.
	// Example: "NATSORT_" transforms "number.kind" to "NATSORT_NUMBER_KIND"
	EnvPrefix string

	// EnvTransform replaces the default prefix + upper-snake mapping
	EnvTransform EnvTransformFunc

	// EnvWhitelist restricts env lookup to the listed paths when non-nil
	EnvWhitelist map[string]bool
}

// DefaultLoadOptions gives CLI > Env > File > Default with no prefix
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// Load reads the file (if any) and the environment using the current options.
func (c *Config) Load(filePath string) error {
	c.mutex.RLock()
	opts := c.options
	c.mutex.RUnlock()
	return c.LoadWithOptions(filePath, opts)
}

// LoadWithOptions replaces the load options, then loads the file and
// environment sources named in opts.Sources. A missing file is reported as
// ErrConfigNotFound joined with any other non-fatal errors; a malformed file
// is fatal.
func (c *Config) LoadWithOptions(filePath string, opts LoadOptions) error {
	c.mutex.Lock()
	c.options = opts
	for p, item := range c.items {
		item.currentValue = c.computeValue(item)
		c.items[p] = item
	}
	c.mutex.Unlock()

	var loadErrors []error

	// Lowest precedence first
	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceFile:
			if filePath == "" {
				continue
			}
			if err := c.loadFile(filePath); err != nil {
				if !errors.Is(err, ErrConfigNotFound) {
					return err
				}
				loadErrors = append(loadErrors, err)
			}

		case SourceEnv:
			if err := c.loadEnv(opts); err != nil {
				loadErrors = append(loadErrors, err)
			}
		}
	}

	return errors.Join(loadErrors...)
}

// LoadFile loads configuration values from a TOML, JSON or YAML file
func (c *Config) LoadFile(filePath string) error {
	return c.loadFile(filePath)
}

// LoadEnv reads variables named prefix + upper-snake path
func (c *Config) LoadEnv(prefix string) error {
	c.mutex.RLock()
	opts := c.options
	c.mutex.RUnlock()

	opts.EnvPrefix = prefix
	return c.loadEnv(opts)
}

// FilePath returns the path of the last file loaded.
func (c *Config) FilePath() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.configFilePath
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	case err != nil:
		return fmt.Errorf("read settings file %q: %w", path, err)
	}

	c.mutex.RLock()
	format := c.fileFormat
	registered := make(map[string]struct{}, len(c.items))
	for p := range c.items {
		registered[p] = struct{}{}
	}
	c.mutex.RUnlock()

	if format == "" || format == "auto" {
		if format = detectFileFormat(path); format == "" {
			format = detectFormatFromContent(raw)
		}
	}

	tree, err := decodeFile(format, raw)
	if err != nil {
		return fmt.Errorf("config file '%s': %w", path, err)
	}

	found := make(map[string]any)
	flattenRegistered("", tree, registered, found)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.configFilePath = path
	for p, item := range c.items {
		if v, ok := found[p]; ok {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			item.values[SourceFile] = v
		} else {
			// a key removed from the file falls back to lower sources
			delete(item.values, SourceFile)
		}
		item.currentValue = c.computeValue(item)
		c.items[p] = item
	}

	return nil
}

// flattenRegistered walks nested tables and records values whose dotted path
// is registered. Tables at a registered path are kept whole.
func flattenRegistered(prefix string, tree map[string]any, registered map[string]struct{}, out map[string]any) {
	for k, v := range tree {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		if _, ok := registered[p]; ok {
			out[p] = v
			continue
		}
		if table, ok := v.(map[string]any); ok {
			flattenRegistered(p, table, registered, out)
		}
	}
}

func decodeFile(format string, data []byte) (map[string]any, error) {
	out := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unable to determine format", ErrUnknownFormat)
	}
	return out, nil
}

func (c *Config) loadEnv(opts LoadOptions) error {
	envName := opts.envTransform()

	c.mutex.RLock()
	candidates := make([]string, 0, len(c.items))
	for p := range c.items {
		if opts.EnvWhitelist == nil || opts.EnvWhitelist[p] {
			candidates = append(candidates, p)
		}
	}
	c.mutex.RUnlock()

	set := make(map[string]string)
	for _, p := range candidates {
		name := envName(p)
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if len(raw) > MaxValueSize {
			return fmt.Errorf("%w: %s", ErrValueSize, name)
		}
		set[p] = raw
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for p, item := range c.items {
		raw, ok := set[p]
		if !ok {
			delete(item.values, SourceEnv)
		} else {
			if item.values == nil {
				item.values = make(map[Source]any)
			}
			// Stored as parsed text; Scan converts to the target type
			item.values[SourceEnv] = parseValue(raw)
		}
		item.currentValue = c.computeValue(item)
		c.items[p] = item
	}

	return nil
}

func (o LoadOptions) envTransform() EnvTransformFunc {
	if o.EnvTransform != nil {
		return o.EnvTransform
	}
	return defaultEnvTransform(o.EnvPrefix)
}

// EnvName returns the environment variable consulted for path.
func (c *Config) EnvName(path string) string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.options.envTransform()(path)
}

// defaultEnvTransform upper-cases the path, replaces dots with underscores
// and prepends the prefix.
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(p string) string {
		return prefix + strings.ToUpper(strings.ReplaceAll(p, ".", "_"))
	}
}

// parseValue recognizes booleans and strips surrounding quotes. Anything else
// stays a string for mapstructure's weak decoding.
func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n := len(s); n > 1 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : n-1]
	}
	return s
}

// detectFileFormat maps an extension to a format name, or ""
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// detectFormatFromContent tries each decoder in turn
func detectFormatFromContent(data []byte) string {
	probes := []struct {
		name      string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"toml", toml.Unmarshal},
		// YAML accepts almost any text, so it is tried last
		{"yaml", yaml.Unmarshal},
	}
	for _, pr := range probes {
		var probe map[string]any
		if err := pr.unmarshal(data, &probe); err == nil && (pr.name != "yaml" || len(probe) > 0) {
			return pr.name
		}
	}
	return ""
}
