// File: lixenwraith/natsort/config/type.go
package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// lookup fetches a registered value for a typed getter.
func (c *Config) lookup(path string) (reflect.Value, any, error) {
	val, found := c.Get(path)
	if !found {
		return reflect.Value{}, nil, fmt.Errorf("%w: %s", ErrNotRegistered, path)
	}
	return reflect.ValueOf(val), val, nil
}

func conversionError(path, target string, val any, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %v (%T) is not a valid %s: %w", path, val, val, target, cause)
	}
	return fmt.Errorf("%s: %v (%T) is not a valid %s", path, val, val, target)
}

// String retrieves a string value, converting common types.
func (c *Config) String(path string) (string, error) {
	rv, val, err := c.lookup(path)
	if err != nil || val == nil {
		return "", err
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	}

	switch {
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), nil
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), nil
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", conversionError(path, "string", val, nil)
}

// Int64 retrieves an integer value. Floats are truncated; strings are parsed
// with base detection ("0x10").
func (c *Config) Int64(path string) (int64, error) {
	rv, val, err := c.lookup(path)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, conversionError(path, "int64", val, nil)
	}

	switch {
	case rv.CanInt():
		return rv.Int(), nil
	case rv.CanUint():
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), nil
		}
		return 0, conversionError(path, "int64", val, strconv.ErrRange)
	case rv.CanFloat():
		return int64(rv.Float()), nil
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case rv.Kind() == reflect.String:
		s := rv.String()
		n, perr := strconv.ParseInt(s, 0, 64)
		if perr == nil {
			return n, nil
		}
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		}
		return 0, conversionError(path, "int64", val, perr)
	}
	return 0, conversionError(path, "int64", val, nil)
}

// Bool retrieves a boolean value. Numbers are true when non-zero.
func (c *Config) Bool(path string) (bool, error) {
	rv, val, err := c.lookup(path)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, conversionError(path, "bool", val, nil)
	}

	switch {
	case rv.Kind() == reflect.Bool:
		return rv.Bool(), nil
	case rv.Kind() == reflect.String:
		b, perr := strconv.ParseBool(rv.String())
		if perr != nil {
			return false, conversionError(path, "bool", val, perr)
		}
		return b, nil
	case rv.CanInt():
		return rv.Int() != 0, nil
	case rv.CanUint():
		return rv.Uint() != 0, nil
	case rv.CanFloat():
		return rv.Float() != 0, nil
	}
	return false, conversionError(path, "bool", val, nil)
}
