// Package radixtw turns Radix color scales and the Tailwind palette into one
// Tailwind theme palette plus a set of semantic component classes.
//
// # Resolution
//
// Resolve raw palettes (as loaded from @radix-ui/colors and
// tailwindcss/colors) into a theme:
//
//	theme := radixtw.Theme(radix, tailwind, radixtw.Options{
//		Aliases:  map[string]string{"gray": "neutral"},
//		Include:  []string{"red", "sage"},
//		Priority: radixtw.PriorityRadixFirst,
//	})
//
// # Semantic classes
//
// Derive bg-<color>-solid, text-<color>-dim and friends for every complete
// family that has a dark counterpart:
//
//	comps := radixtw.Semantics(theme, "tw-", opts)
//
// # Generation
//
// Generate runs the whole pipeline from palette files on disk and writes a
// theme JSON file and a Tailwind stylesheet:
//
//	result, err := radixtw.Generate(radixtw.Config{
//		RadixSources:   []string{"palettes/radix/*.json"},
//		OutputDir:      "web/styles",
//		ThemeFile:      "radix-theme.json",
//		StylesheetFile: "radix-components.css",
//	})
//
// # CLI Tool
//
// radixtw also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/radixtw/cmd/radixtw@latest
package radixtw

import (
	"github.com/yacobolo/radixtw/internal/colors"
	"github.com/yacobolo/radixtw/internal/palette"
	"github.com/yacobolo/radixtw/internal/semantic"
)

// Palette is an insertion-ordered map of color names to colors.
type Palette = colors.Palette

// Options control palette resolution and semantic generation.
type Options = palette.Options

// Priority decides which palette wins on a name conflict.
type Priority = palette.Priority

// Components are the semantic rules for one color family.
type Components = semantic.Components

// Rule is a single semantic class.
type Rule = semantic.Rule

// Priority modes
const (
	PriorityNoTailwind    = palette.PriorityNoTailwind
	PriorityRadixFirst    = palette.PriorityRadixFirst
	PriorityTailwindFirst = palette.PriorityTailwindFirst
)

// ParsePriority maps a configuration string to a Priority, defaulting to
// PriorityNoTailwind.
func ParsePriority(s string) Priority {
	return palette.ParsePriority(s)
}

// Theme resolves the raw Radix and Tailwind palettes and seeds the result
// with black, current, inherit, transparent and white.
func Theme(radix, tailwind *Palette, opts Options) *Palette {
	return palette.Theme(radix, tailwind, opts)
}

// Semantics derives the semantic components for a resolved theme, honouring
// the host's class prefix. It returns nil when opts.DisableSemantics is set.
func Semantics(theme *Palette, prefix string, opts Options) []Components {
	if opts.DisableSemantics {
		return nil
	}
	return semantic.DeriveAll(theme, semantic.Options{Prefix: prefix})
}
