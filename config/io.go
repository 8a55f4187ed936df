// File: lixenwraith/natsort/config/io.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Save writes the resolved configuration to path atomically. The format
// follows the extension and defaults to TOML.
func (c *Config) Save(path string) error {
	return c.SaveSource(path, "")
}

// SaveSource writes only the values recorded from one source. An empty
// source saves the resolved values.
func (c *Config) SaveSource(path string, source Source) error {
	c.mutex.RLock()
	nestedData := c.nested(source)
	c.mutex.RUnlock()

	format := detectFileFormat(path)
	if format == "" {
		format = "toml"
	}

	data, err := encodeFile(format, nestedData)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// Dump writes the resolved configuration to w as TOML.
func (c *Config) Dump(w io.Writer) error {
	c.mutex.RLock()
	nestedData := c.nested("")
	c.mutex.RUnlock()

	return toml.NewEncoder(w).Encode(nestedData)
}

func encodeFile(format string, data map[string]any) ([]byte, error) {
	switch format {
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(data); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
		return buf.Bytes(), nil
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// atomicWriteFile writes to a temporary file in the target directory and
// renames it over path.
func atomicWriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
