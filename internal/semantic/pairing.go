package semantic

import "github.com/yacobolo/radixtw/internal/colors"

// DefaultPairs maps each Radix family to the gray scale whose step 12 reads
// well as text on that family's solid background ("natural pairing").
var DefaultPairs = map[string]string{
	"amber":   "sand",
	"blue":    "slate-dark",
	"bronze":  "sand-dark",
	"brown":   "sand-dark",
	"crimson": "mauve-dark",
	"cyan":    "slate-dark",
	"gold":    "sand-dark",
	"grass":   "olive-dark",
	"gray":    "gray-dark",
	"green":   "sage-dark",
	"indigo":  "slate-dark",
	"iris":    "slate-dark",
	"jade":    "sage-dark",
	"lime":    "olive",
	"mauve":   "mauve-dark",
	"mint":    "sage",
	"olive":   "olive-dark",
	"orange":  "sand-dark",
	"pink":    "mauve-dark",
	"plum":    "mauve-dark",
	"purple":  "mauve-dark",
	"red":     "mauve-dark",
	"ruby":    "mauve-dark",
	"sage":    "sage-dark",
	"sand":    "sand-dark",
	"sky":     "slate",
	"slate":   "slate-dark",
	"teal":    "sage-dark",
	"tomato":  "mauve-dark",
	"violet":  "mauve-dark",
	"yellow":  "sand",
}

// inverse pairs black and white: each is the other's dark-mode counterpart.
var inverse = map[string]string{
	"black": "white",
	"white": "black",
}

// Family returns the dark counterpart and the foreground color name for a
// color name.
//
// The dark counterpart keeps the P3 and alpha variants. For black and white
// it is the opposite color instead of a "-dark" variant. The foreground is
// always a non-alpha, non-dark name; it is empty when pairs has no entry.
func Family(name string, pairs map[string]string) (dark, foreground string) {
	parts := colors.Parse(name)

	if opposite, ok := inverse[parts.Base]; ok {
		dark = colors.Build(colors.NameParts{Base: opposite, P3: parts.P3, Alpha: parts.Alpha})
		foreground = colors.Build(colors.NameParts{Base: opposite, P3: parts.P3})
		return dark, foreground
	}

	dark = colors.Build(colors.NameParts{Base: parts.Base, Dark: true, P3: parts.P3, Alpha: parts.Alpha})
	if pair := pairs[parts.Base]; pair != "" {
		foreground = colors.Build(colors.NameParts{Base: pair, P3: parts.P3})
	}
	return dark, foreground
}
