package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an inventory entry is a bare filename such as
// "neem_tree.glb". Separators, traversal, NUL bytes and dotfiles are
// rejected so an entry can always be appended to a public directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q has no base name", ErrInvalidAssetName, name)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidAssetName, name)
	}
	return nil
}
