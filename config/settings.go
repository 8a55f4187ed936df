// FILE: lixenwraith/natsort/config/settings.go
package config

import (
	"fmt"

	"github.com/lixenwraith/natsort"
	"github.com/spf13/pflag"
)

// AppName names the settings file and prefixes the environment variables
const AppName = "natsort"

// EnvPrefix is prepended to setting environment variables, e.g. NATSORT_SAFE_MODE
const EnvPrefix = "NATSORT_"

// Settings is the decoded form of a natsort settings file.
type Settings struct {
	Number    NumberSettings `toml:"number"`
	SafeMode  bool           `toml:"safe_mode" desc:"separate adjacent numbers with an empty text token"`
	Transform string         `toml:"transform" desc:"pre-transform applied before keying: none, lower or fold"`
	Reverse   bool           `toml:"reverse" desc:"sort in descending order"`
	MaxDepth  int            `toml:"max_depth" desc:"maximum nesting accepted when keying structured input"`
	Log       LogSettings    `toml:"log"`
}

// NumberSettings selects the numbers recognized inside strings.
type NumberSettings struct {
	Kind     natsort.NumberKind `toml:"kind" desc:"numbers recognized in text: float, int or none"`
	Signed   bool               `toml:"signed" desc:"treat a leading + or - as part of the number"`
	Exponent bool               `toml:"exponent" desc:"recognize exponents such as 3.5e5 (float only)"`
}

// LogSettings configures the CLI logger.
type LogSettings struct {
	Level  string `toml:"level" desc:"log level: info, debug or trace"`
	Format string `toml:"format" desc:"log format: text or json"`
}

// DefaultSettings mirrors natsort.DefaultOptions.
func DefaultSettings() Settings {
	opts := natsort.DefaultOptions()
	return Settings{
		Number: NumberSettings{
			Kind:     opts.NumberKind,
			Signed:   opts.Signed,
			Exponent: opts.Exponent,
		},
		SafeMode:  opts.SafeMode,
		Transform: "none",
		MaxDepth:  natsort.DefaultMaxDepth,
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Options converts the settings to key generation options. An unknown number
// kind or transform, or a negative depth, is a *natsort.ConfigurationError.
func (s Settings) Options() (natsort.Options, error) {
	if !s.Number.Kind.Valid() {
		return natsort.Options{}, &natsort.ConfigurationError{Field: "number_kind", Value: s.Number.Kind}
	}
	if s.MaxDepth < 0 {
		return natsort.Options{}, &natsort.ConfigurationError{Field: "max_depth", Value: s.MaxDepth}
	}

	transform, err := natsort.TransformByName(s.Transform)
	if err != nil {
		return natsort.Options{}, err
	}

	return natsort.Options{
		NumberKind: s.Number.Kind,
		Signed:     s.Number.Signed,
		Exponent:   s.Number.Exponent,
		SafeMode:   s.SafeMode,
		Transform:  transform,
		MaxDepth:   s.MaxDepth,
	}, nil
}

// Settings decodes the resolved configuration.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	if err := c.Scan("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

// NewSettingsBuilder returns a Builder with the natsort defaults, environment
// prefix and file discovery in place.
func NewSettingsBuilder() *Builder {
	return NewBuilder().
		WithDefaults(DefaultSettings()).
		WithEnvPrefix(EnvPrefix).
		WithFileDiscovery(DefaultDiscoveryOptions(AppName)).
		WithValidator(validateSettings)
}

// AddSettingsFlags defines a flag on fs for each of the given settings, or
// for all of them when none are named. Flags are named by path
// ("number.kind") and typed after the default.
func AddSettingsFlags(fs *pflag.FlagSet, paths ...string) {
	c := New()
	if err := c.RegisterStruct("", DefaultSettings()); err != nil {
		panic(err)
	}
	c.GenerateFlags(fs, paths...)
}

func validateSettings(c *Config) error {
	s, err := c.Settings()
	if err != nil {
		return err
	}
	_, err = s.Options()
	return err
}
