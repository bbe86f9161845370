// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory when it was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/greenar.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), "/go-greenar/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInventoryNotFound returns a hint for a missing inventory file.
func ForInventoryNotFound() string {
	return format("omit --inventory to use the built-in asset list")
}

// ForInventoryParse returns a hint describing the inventory file layout.
func ForInventoryParse() string {
	return format("expected keys: models, images (lists of bare filenames like neem_tree.glb)")
}

// ForCatalogNotFound returns hints for a missing catalog CSV.
func ForCatalogNotFound() string {
	return format("pass the CSV path as an argument or set catalog.path / GREENAR_CATALOG")
}

// ForUnknownClass lists the accepted asset classes.
func ForUnknownClass(valid []string) string {
	if len(valid) == 0 {
		return ""
	}
	return format("valid classes: " + strings.Join(valid, ", "))
}

// ForUnknownFormat lists the accepted output formats.
func ForUnknownFormat(valid []string) string {
	if len(valid) == 0 {
		return ""
	}
	return format("valid formats: " + strings.Join(valid, ", "))
}

// slashed normalizes Windows separators so the directory check above
// matches on every platform.
func slashed(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
