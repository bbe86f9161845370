package assets

import (
	"strings"
	"unicode"
)

// candidates holds the filename stems derived from a display name.
type candidates struct {
	underscore string // "neem_tree"
	hyphen     string // "neem-tree"
}

// normalize lowercases and trims name, drops every character outside
// [a-z0-9_-] and whitespace, then joins the remaining words with
// underscores and with hyphens.
func normalize(name string) candidates {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case isSlugRune(r), r == '_', unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, strings.ToLower(strings.TrimSpace(name)))

	words := strings.Fields(cleaned)
	return candidates{
		underscore: strings.Join(words, "_"),
		hyphen:     strings.Join(words, "-"),
	}
}

// slug builds the last-chance stem: whitespace runs become hyphens, every
// character outside [a-z0-9-] is dropped (underscores included), then
// hyphens become underscores. "Peach - Tree" yields "peach___tree".
func slug(name string) string {
	hyphened := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	kept := strings.Map(func(r rune) rune {
		if isSlugRune(r) {
			return r
		}
		return -1
	}, hyphened)
	return strings.ReplaceAll(kept, "-", "_")
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
