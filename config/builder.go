// File: lixenwraith/natsort/config/builder.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ValidatorFunc validates a fully loaded Config.
type ValidatorFunc func(c *Config) error

// Builder assembles a Config from defaults, a file, the environment and flags.
type Builder struct {
	cfg        *Config
	opts       LoadOptions
	defaults   any
	prefix     string
	file       string
	flags      *pflag.FlagSet
	discovery  *FileDiscoveryOptions
	validators []ValidatorFunc
}

// NewBuilder returns a Builder with DefaultLoadOptions.
func NewBuilder() *Builder {
	return &Builder{
		cfg:  New(),
		opts: DefaultLoadOptions(),
	}
}

// WithDefaults registers the fields of a struct value as paths and defaults.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithPrefix nests the registered defaults under prefix.
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithFile sets the configuration file path. It takes precedence over
// file discovery.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFlags binds the changed flags of a parsed flag set as SourceCLI values
func (b *Builder) WithFlags(fs *pflag.FlagSet) *Builder {
	b.flags = fs
	return b
}

// WithSources overrides the precedence order, highest first.
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithEnvTransform replaces the prefix + upper-snake variable naming.
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithEnvWhitelist restricts environment lookup to paths. Calls accumulate.
func (b *Builder) WithEnvWhitelist(paths ...string) *Builder {
	allowed := b.opts.EnvWhitelist
	if allowed == nil {
		allowed = make(map[string]bool, len(paths))
	}
	for _, p := range paths {
		allowed[p] = true
	}
	b.opts.EnvWhitelist = allowed
	return b
}

// WithValidator adds a validation function run at the end of Build, in the
// order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build registers the defaults, loads file and environment, binds flags and
// runs the validators. ErrConfigNotFound is returned alongside a usable
// Config; every other error is fatal.
func (b *Builder) Build() (*Config, error) {
	if b.defaults != nil {
		if err := b.cfg.RegisterStruct(b.prefix, b.defaults); err != nil {
			return nil, fmt.Errorf("register defaults: %w", err)
		}
	}

	file := b.file
	if file == "" && b.discovery != nil {
		file = b.discover(*b.discovery)
	}

	missing := b.cfg.LoadWithOptions(file, b.opts)
	if isFatal(missing) {
		return nil, missing
	}

	if b.flags != nil {
		if err := b.cfg.BindFlags(b.flags); err != nil {
			return nil, err
		}
	}

	for _, validate := range b.validators {
		if err := validate(b.cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return b.cfg, missing
}

// MustBuild panics on any Build error other than a missing file.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if isFatal(err) {
		panic(fmt.Sprintf("natsort config: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the configuration under the registration
// prefix into target
func (b *Builder) BuildAndScan(target any) error {
	cfg, err := b.Build()
	if isFatal(err) {
		return err
	}

	if scanErr := cfg.Scan(b.prefix, target); scanErr != nil {
		return fmt.Errorf("scan into %T: %w", target, scanErr)
	}

	return err
}

// isFatal reports whether err is anything beyond a missing settings file.
func isFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrConfigNotFound)
}
