package palette

import "github.com/yacobolo/radixtw/internal/colors"

// Options control how the palettes are resolved.
type Options struct {
	// Aliases renames Radix families, e.g. {"gray": "neutral"}.
	Aliases map[string]string
	// DisableSemantics turns off semantic class generation.
	DisableSemantics bool
	// Exclude lists color names to drop; applied after Include.
	Exclude []string
	// Include lists the only color names to keep. Nil keeps everything.
	Include []string
	// Priority resolves Radix/Tailwind name conflicts.
	Priority Priority
}

// Resolver runs the normalize, alias, filter and merge stages.
type Resolver struct {
	Radix    *RadixNormalizer
	Tailwind *TailwindNormalizer
}

// NewResolver returns a Resolver using the built-in Radix family names and
// Tailwind deny-list.
func NewResolver() *Resolver {
	return &Resolver{
		Radix:    NewRadixNormalizer(RadixBaseNames),
		Tailwind: NewTailwindNormalizer(TailwindDeprecated),
	}
}

// Resolve merges the raw Radix and Tailwind palettes into one flat palette.
// Inputs are not modified.
func (r *Resolver) Resolve(radix, tailwind *colors.Palette, opts Options) *colors.Palette {
	aliasedRadix := Alias(r.Radix.Normalize(radix), opts.Aliases)
	normalizedTailwind := r.Tailwind.Normalize(tailwind)

	checkInclusion := NewInclusionChecker(opts.Include, opts.Exclude)
	filteredRadix := Filter(aliasedRadix, checkInclusion)
	filteredTailwind := Filter(normalizedTailwind, checkInclusion)

	return Merge(filteredRadix, filteredTailwind, opts.Priority)
}

// Resolve merges the palettes with the default Resolver.
func Resolve(radix, tailwind *colors.Palette, opts Options) *colors.Palette {
	return NewResolver().Resolve(radix, tailwind, opts)
}

// Seeds returns the non-family colors every theme starts with.
func Seeds() *colors.Palette {
	p := colors.NewPalette()
	p.Set("black", colors.Scalar("#000"))
	p.Set("current", colors.Scalar("currentColor"))
	p.Set("inherit", colors.Scalar("inherit"))
	p.Set("transparent", colors.Scalar("transparent"))
	p.Set("white", colors.Scalar("#fff"))
	return p
}

// Theme returns the seeded, resolved palette. A resolved color with a seed
// name replaces the seed.
func (r *Resolver) Theme(radix, tailwind *colors.Palette, opts Options) *colors.Palette {
	return colors.Overlay(Seeds(), r.Resolve(radix, tailwind, opts))
}

// Theme builds the theme palette with the default Resolver.
func Theme(radix, tailwind *colors.Palette, opts Options) *colors.Palette {
	return NewResolver().Theme(radix, tailwind, opts)
}
