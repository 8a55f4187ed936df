// FILE: lixenwraith/natsort/config/discovery.go
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileDiscoveryOptions describes where Build looks for a settings file when
// WithFile was not called.
type FileDiscoveryOptions struct {
	Name       string   // file name without extension
	Extensions []string // tried per directory, in order

	// Paths are searched before the current and XDG directories
	Paths []string

	EnvVar string // variable holding an explicit path
	Flag   string // flag holding an explicit path, on the Builder's flag set

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the discovery defaults for appName:
// appName.{toml,yaml,yml,json} found through --config, APPNAME_CONFIG, the
// current directory and the XDG directories.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		Flag:          "config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery resolves the file at Build time when WithFile was not given.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// discover returns the first candidate file, or "" to run on defaults.
// An explicit flag or environment path is returned even if missing so the
// load reports ErrConfigNotFound for it.
func (b *Builder) discover(opts FileDiscoveryOptions) string {
	if explicit := b.explicitPath(opts); explicit != "" {
		return explicit
	}

	for _, dir := range opts.searchDirs() {
		for _, ext := range opts.Extensions {
			candidate := filepath.Join(dir, opts.Name+ext)
			if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
				return candidate
			}
		}
	}
	return ""
}

func (b *Builder) explicitPath(opts FileDiscoveryOptions) string {
	if opts.Flag != "" && b.flags != nil {
		if f := b.flags.Lookup(opts.Flag); f != nil && f.Changed {
			if v := f.Value.String(); v != "" {
				return v
			}
		}
	}
	if opts.EnvVar == "" {
		return ""
	}
	return os.Getenv(opts.EnvVar)
}

func (o FileDiscoveryOptions) searchDirs() []string {
	dirs := slices.Clone(o.Paths)
	if o.UseCurrentDir {
		if wd, err := os.Getwd(); err == nil {
			dirs = append(dirs, wd)
		}
	}
	if o.UseXDG {
		dirs = append(dirs, getXDGConfigPaths(o.Name)...)
	}
	return dirs
}

// getXDGConfigPaths lists the per-user directory followed by the system
// directories, each joined with appName.
func getXDGConfigPaths(appName string) []string {
	var bases []string

	switch home, xdgHome := os.Getenv("HOME"), os.Getenv("XDG_CONFIG_HOME"); {
	case xdgHome != "":
		bases = append(bases, xdgHome)
	case home != "":
		bases = append(bases, filepath.Join(home, ".config"))
	}

	if system := os.Getenv("XDG_CONFIG_DIRS"); system != "" {
		bases = append(bases, filepath.SplitList(system)...)
	} else {
		bases = append(bases, "/etc/xdg", "/etc")
	}

	dirs := make([]string, 0, len(bases))
	for _, base := range bases {
		dirs = append(dirs, filepath.Join(base, appName))
	}
	return dirs
}
