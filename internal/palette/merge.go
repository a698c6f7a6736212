package palette

import (
	"strings"

	"github.com/yacobolo/radixtw/internal/colors"
)

// Priority decides which palette wins when Radix and Tailwind define the
// same color name.
type Priority string

// Priority modes
const (
	// PriorityNoTailwind drops the Tailwind palette entirely (default)
	PriorityNoTailwind Priority = "no-tailwind"
	// PriorityRadixFirst keeps both, Radix overrides Tailwind on conflict
	PriorityRadixFirst Priority = "radix-first"
	// PriorityTailwindFirst keeps both, Tailwind overrides Radix on conflict
	PriorityTailwindFirst Priority = "tailwind-first"
)

// ParsePriority maps a priority string to a Priority. The generic spellings
// "no-tailwind-equivalent", "system-a-first" and "system-b-first" are
// accepted too. Unknown or empty values yield PriorityNoTailwind.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radix-first", "system-a-first":
		return PriorityRadixFirst
	case "tailwind-first", "system-b-first":
		return PriorityTailwindFirst
	default:
		return PriorityNoTailwind
	}
}

// Merge combines the two palettes according to priority. Colliding names
// are replaced wholesale; step mappings are never merged step by step.
// priority accepts any spelling ParsePriority does.
func Merge(radix, tailwind *colors.Palette, priority Priority) *colors.Palette {
	switch ParsePriority(string(priority)) {
	case PriorityRadixFirst:
		return colors.Overlay(tailwind, radix)
	case PriorityTailwindFirst:
		return colors.Overlay(radix, tailwind)
	default:
		return colors.Overlay(nil, radix)
	}
}
