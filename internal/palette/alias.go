package palette

import "github.com/yacobolo/radixtw/internal/colors"

// Alias renames color families. Every variant of an aliased family is
// renamed in the same pass:
//
//	aliases{"red": "sun"}: red, red-dark, red-p3-a -> sun, sun-dark, sun-p3-a
func Alias(p *colors.Palette, aliases map[string]string) *colors.Palette {
	out := colors.NewPalette()
	if p == nil {
		return out
	}
	for name, c := range p.All() {
		parts := colors.Parse(name)
		if alias, ok := aliases[parts.Base]; ok {
			parts.Base = alias
		}
		out.Set(colors.Build(parts), c)
	}
	return out
}
