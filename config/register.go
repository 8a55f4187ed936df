// FILE: lixenwraith/natsort/config/register.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Register makes a configuration path known to the Config instance.
// The path is dot-separated (e.g., "number.kind", "reverse") and each
// segment must be a valid TOML bare key.
func (c *Config) Register(path string, defaultValue any) error {
	return c.register(path, defaultValue, "")
}

func (c *Config) register(path string, defaultValue any, usage string) error {
	if path == "" {
		return errors.New("empty path")
	}
	for seg := range strings.SplitSeq(path, ".") {
		if !isValidKeySegment(seg) {
			return fmt.Errorf("path %q: segment %q is not a bare key", path, seg)
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[path] = configItem{
		defaultValue: defaultValue,
		currentValue: defaultValue,
		usage:        usage,
	}
	return nil
}

// RegisterStruct registers one path per leaf field of a struct, named by the
// `toml` tag and nested structs joined with dots. The field's value becomes
// the default and its `desc` tag becomes the flag usage text.
func (c *Config) RegisterStruct(prefix string, defaults any) error {
	v := reflect.Indirect(reflect.ValueOf(defaults))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct: want a struct or non-nil struct pointer, got %T", defaults)
	}

	var errs []error
	c.registerFields(v, prefix, &errs)
	return errors.Join(errs...)
}

func (c *Config) registerFields(v reflect.Value, prefix string, errs *[]error) {
	if prefix != "" && !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get(c.tagName)
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		path := prefix + name

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer && field.Type.Elem().Kind() == reflect.Struct {
			if fv.IsNil() {
				continue
			}
			c.registerFields(fv.Elem(), path, errs)
			continue
		}
		if fv.Kind() == reflect.Struct {
			c.registerFields(fv, path, errs)
			continue
		}

		if err := c.register(path, fv.Interface(), field.Tag.Get("desc")); err != nil {
			*errs = append(*errs, fmt.Errorf("field %s: %w", field.Name, err))
		}
	}
}
