// FILE: lixenwraith/natsort/errors.go
package natsort

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidConfig = errors.New("invalid natsort configuration")
	ErrMaxDepth      = errors.New("value nesting exceeds maximum depth")
	ErrIndexLength   = errors.New("index length does not match sequence length")
	ErrIndexRange    = errors.New("index out of range")
)

// ConfigurationError reports an option that does not map to a number pattern
// or to a known setting. It matches ErrInvalidConfig with errors.Is.
type ConfigurationError struct {
	Field string // offending option, e.g. "number_kind"
	Value any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("natsort: %s parameter '%v' invalid", e.Field, e.Value)
}

// Is allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfig
}
