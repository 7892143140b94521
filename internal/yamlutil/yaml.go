// Package yamlutil is the single place that touches the YAML dependency.
// Config files are the only YAML the tool reads, so the package exposes
// just a bounded, strict decoder. JSON documents parse through the same
// entry point since JSON is valid YAML.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds decoded documents. Config files are tiny; anything
// near this limit is a mistake, not a configuration.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields so a
// typo in a config key fails loudly instead of being silently ignored.
// Fields absent from data keep whatever value v already holds, which is
// what lets callers decode onto a pre-filled defaults struct.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
