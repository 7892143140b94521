package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a name is safe to interpolate into an
// embedded or filesystem lookup. Names are bare identifiers, never paths.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains parent reference", ErrInvalidAssetName, name)
	}
	return nil
}
