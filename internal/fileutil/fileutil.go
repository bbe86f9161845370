// Package fileutil provides file and path helpers shared by config loading,
// catalog loading and the CLI.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a config name.
//
// Examples:
//   - "greenar" -> false (name)
//   - "./greenar.yaml" -> true (relative path)
//   - "/etc/greenar.yaml" -> true (absolute)
//   - "C:\greenar.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsPublicPath returns true for paths a browser can load from the front
// end's origin ("/models") or from another origin (a URL).
func IsPublicPath(s string) bool {
	return strings.HasPrefix(s, "/") || IsURL(s)
}

// JoinURL appends a rooted public path to a base URL, collapsing the slash
// between them. Absolute URLs and an empty base leave p unchanged.
func JoinURL(base, p string) string {
	if base == "" || IsURL(p) {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
