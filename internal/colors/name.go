// Package colors holds the color-name algebra and the ordered palette model
// shared by the resolver and the semantic class generator.
package colors

import "strings"

// Variant suffixes, in the only order they may appear after a base name.
const (
	suffixDark  = "-dark"
	suffixP3    = "-p3"
	suffixAlpha = "-a"
)

// NameParts are the orthogonal attributes a color name is made of.
//
//	"blue-dark-p3-a" -> {Base: "blue", Dark: true, P3: true, Alpha: true}
type NameParts struct {
	Base  string
	Dark  bool
	P3    bool
	Alpha bool
}

// Parse splits a color name into its parts.
//
// The base is the shortest non-empty prefix after which only the optional
// suffixes "-dark", "-p3" and "-a" remain, in that order. Suffixes match
// case-insensitively and the base is lowercased. Parse never fails: names
// without suffixes are all base, and an empty name yields zero parts.
func Parse(name string) NameParts {
	if name == "" {
		return NameParts{}
	}

	lower := strings.ToLower(name)
	parts := NameParts{}
	rest := lower

	// Strip from the right; each suffix must leave at least one base byte.
	if stripped, ok := cutSuffix(rest, suffixAlpha); ok {
		rest, parts.Alpha = stripped, true
	}
	if stripped, ok := cutSuffix(rest, suffixP3); ok {
		rest, parts.P3 = stripped, true
	}
	if stripped, ok := cutSuffix(rest, suffixDark); ok {
		rest, parts.Dark = stripped, true
	}

	if rest == "" {
		return NameParts{Base: name}
	}

	parts.Base = rest
	return parts
}

// cutSuffix removes suffix from s when what remains is non-empty.
func cutSuffix(s, suffix string) (string, bool) {
	if len(s) <= len(suffix) || !strings.HasSuffix(s, suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}

// Build assembles a color name from its parts, appending the variant
// suffixes in canonical order (dark, p3, alpha).
func Build(parts NameParts) string {
	var b strings.Builder
	b.Grow(len(parts.Base) + len(suffixDark) + len(suffixP3) + len(suffixAlpha))
	b.WriteString(parts.Base)
	if parts.Dark {
		b.WriteString(suffixDark)
	}
	if parts.P3 {
		b.WriteString(suffixP3)
	}
	if parts.Alpha {
		b.WriteString(suffixAlpha)
	}
	return b.String()
}

// String returns the canonical color name.
func (p NameParts) String() string {
	return Build(p)
}
