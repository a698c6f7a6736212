// Package semantic derives purpose-named composite classes (bg-red-solid,
// text-red-dim, ...) from a resolved palette.
//
// A family qualifies when it has all twelve steps and a dark counterpart
// that also has all twelve steps. Anything else is skipped silently; the
// derivation never fails.
package semantic

import "github.com/yacobolo/radixtw/internal/colors"

// Options configure the derivation.
type Options struct {
	// Prefix is the host's class prefix, inserted before every dark marker.
	Prefix string
	// Pairs maps families to their foreground family. Nil uses DefaultPairs.
	Pairs map[string]string
	// Steps are the steps a color needs. Nil uses colors.RequiredSteps.
	Steps []string
}

func (o Options) pairs() map[string]string {
	if o.Pairs == nil {
		return DefaultPairs
	}
	return o.Pairs
}

func (o Options) steps() []string {
	if o.Steps == nil {
		return colors.RequiredSteps
	}
	return o.Steps
}

// Derive walks the palette in order and calls add once per qualifying
// family with its twelve rules.
func Derive(p *colors.Palette, opts Options, add func(Components)) {
	if p == nil {
		return
	}
	required := opts.steps()
	pairs := opts.pairs()

	for name, c := range p.All() {
		if colors.Parse(name).Dark || !c.IsComplete(required) {
			continue
		}

		dark, foreground := Family(name, pairs)

		darkColor, ok := p.Get(dark)
		if !ok || !darkColor.IsComplete(required) {
			continue
		}

		if fg, ok := p.Get(foreground); !ok || foreground == "" || !fg.IsComplete(required) {
			foreground = ""
		}

		add(Components{
			Name:       name,
			Dark:       dark,
			Foreground: foreground,
			Rules:      buildRules(name, dark, foreground, opts.Prefix),
		})
	}
}

// DeriveAll collects the components Derive produces.
func DeriveAll(p *colors.Palette, opts Options) []Components {
	var out []Components
	Derive(p, opts, func(c Components) {
		out = append(out, c)
	})
	return out
}
