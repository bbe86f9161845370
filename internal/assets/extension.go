package assets

import (
	"path"
	"strings"
)

// SwapExtension replaces the file extension of p with ext, leaving the
// directory, any URL scheme and host, and any query or fragment untouched.
// When the last path segment has no extension, ext is appended to it.
//
//	/models/neem_tree.glb                → /models/neem_tree.usdz
//	https://cdn.example/m/teak.glb?v=2   → https://cdn.example/m/teak.usdz?v=2
func SwapExtension(p, ext string) string {
	base, tail := p, ""
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		base, tail = p[:i], p[i:]
	}

	segment := base
	if i := strings.LastIndex(base, "/"); i >= 0 {
		segment = base[i+1:]
	}
	if scheme := strings.Index(base, "://"); scheme >= 0 && len(base)-len(segment) <= scheme+3 {
		// Bare "scheme://host": the host is not a filename.
		segment = ""
	}

	old := path.Ext(segment)
	return base[:len(base)-len(old)] + ext + tail
}
