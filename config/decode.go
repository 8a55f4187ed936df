// FILE: lixenwraith/natsort/config/decode.go
package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/lixenwraith/natsort"
	"github.com/mitchellh/mapstructure"
)

// Scan decodes the resolved configuration under basePath into target, a
// non-nil pointer to a struct or map. Fields are matched by their `toml` tag
// and values are weakly typed, so "true" decodes into a bool.
func (c *Config) Scan(basePath string, target any) error {
	return c.unmarshal(basePath, "", target)
}

// ScanSource is Scan restricted to the values of one source.
func (c *Config) ScanSource(basePath string, source Source, target any) error {
	return c.unmarshal(basePath, source, target)
}

// unmarshal is the single decoding path behind Scan and ScanSource.
func (c *Config) unmarshal(basePath string, source Source, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be non-nil pointer, got %T", target)
	}

	c.mutex.RLock()
	nestedMap := c.nested(source)
	tagName := c.tagName
	c.mutex.RUnlock()

	sectionData := navigateToPath(nestedMap, basePath)
	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		if sectionData != nil {
			return fmt.Errorf("path %q refers to non-map value (type %T)", basePath, sectionData)
		}
		sectionMap = make(map[string]any)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", basePath, err)
	}
	return nil
}

func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToNumberKindHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToNumberKindHookFunc decodes "float", "int" and "none" into
// natsort.NumberKind.
func stringToNumberKindHookFunc() mapstructure.DecodeHookFunc {
	kindType := reflect.TypeOf(natsort.NumberKind(0))
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != kindType {
			return data, nil
		}
		return natsort.ParseNumberKind(reflect.ValueOf(data).String())
	}
}
