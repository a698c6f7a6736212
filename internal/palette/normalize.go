// Package palette resolves the Radix and Tailwind palettes into a single
// flat palette according to user options.
package palette

import (
	"strings"

	"github.com/yacobolo/radixtw/internal/colors"
)

// RadixBaseNames are the Radix color families whose names carry no variant.
var RadixBaseNames = []string{
	"amber", "blue", "bronze", "brown", "crimson", "cyan", "gold", "grass",
	"gray", "green", "indigo", "iris", "jade", "lime", "mauve", "mint",
	"olive", "orange", "pink", "plum", "purple", "red", "ruby", "sage",
	"sand", "sky", "slate", "teal", "tomato", "violet", "yellow",
}

// TailwindDeprecated are Tailwind color names that are aliases of other
// families and must never reach the output.
var TailwindDeprecated = []string{"blueGray", "coolGray", "lightBlue", "trueGray", "warmGray"}

// RadixNormalizer converts Radix names and scales to canonical form.
//
//	blueDarkP3A: {blueA1: ..., blueA12: ...} -> blue-dark-p3-a: {1: ..., 12: ...}
type RadixNormalizer struct {
	baseNames map[string]struct{}
}

// NewRadixNormalizer returns a normalizer that treats baseNames as plain
// family names.
func NewRadixNormalizer(baseNames []string) *RadixNormalizer {
	return &RadixNormalizer{baseNames: toSet(baseNames)}
}

// Normalize returns a new palette with canonical names and numeric steps.
func (n *RadixNormalizer) Normalize(raw *colors.Palette) *colors.Palette {
	out := colors.NewPalette()
	if raw == nil {
		return out
	}
	for name, c := range raw.All() {
		out.Set(n.Name(name), normalizeRadixColor(c))
	}
	return out
}

// Name converts a Radix color name ("blueDarkP3A") into a canonical one
// ("blue-dark-p3-a"). Names that already contain a dash are taken as
// canonical and only lowercased into canonical suffix order.
func (n *RadixNormalizer) Name(radixName string) string {
	if _, ok := n.baseNames[radixName]; ok {
		return strings.ToLower(radixName)
	}
	if strings.Contains(radixName, "-") {
		return colors.Build(colors.Parse(radixName))
	}

	name := strings.ToLower(radixName)
	name = strings.Replace(name, "dark", "-dark", 1)
	name = strings.Replace(name, "p3", "-p3", 1)
	if strings.HasSuffix(name, "a") {
		return name[:len(name)-1] + "-a"
	}
	return name
}

// normalizeRadixColor keeps only steps whose key ends in digits and
// renames them to those digits. Scalars pass through.
func normalizeRadixColor(c colors.Color) colors.Color {
	if c.IsScalar() {
		return c
	}
	steps := colors.NewSteps()
	for key, value := range c.Steps().All() {
		if step := trailingDigits(key); step != "" {
			steps.Set(step, value)
		}
	}
	return colors.Stepped(steps)
}

func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}

// TailwindNormalizer removes deprecated Tailwind color names.
type TailwindNormalizer struct {
	deprecated map[string]struct{}
}

// NewTailwindNormalizer returns a normalizer that drops the given names.
func NewTailwindNormalizer(deprecated []string) *TailwindNormalizer {
	return &TailwindNormalizer{deprecated: toSet(deprecated)}
}

// Normalize returns a new palette without the deprecated names.
func (n *TailwindNormalizer) Normalize(raw *colors.Palette) *colors.Palette {
	out := colors.NewPalette()
	if raw == nil {
		return out
	}
	for name, c := range raw.All() {
		if _, drop := n.deprecated[name]; drop {
			continue
		}
		out.Set(name, c)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
