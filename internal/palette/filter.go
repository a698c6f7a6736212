package palette

import "github.com/yacobolo/radixtw/internal/colors"

// NewInclusionChecker builds the include/exclude predicate.
//
// A nil include list means no restriction. Exclusion is applied after
// inclusion, so a name listed in both is rejected.
//
// A family and its dark variant always match each other: including or
// excluding "red" also covers "red-dark", whether or not semantic classes
// are enabled.
func NewInclusionChecker(include, exclude []string) func(name string) bool {
	var parsedInclude []colors.NameParts
	if include != nil {
		parsedInclude = parseAll(include)
	}
	parsedExclude := parseAll(exclude)

	return func(name string) bool {
		candidate := colors.Parse(name)

		if include != nil && !matchesAny(parsedInclude, candidate) {
			return false
		}

		return !matchesAny(parsedExclude, candidate)
	}
}

// Filter returns a new palette holding the entries keep accepts.
func Filter(p *colors.Palette, keep func(name string) bool) *colors.Palette {
	out := colors.NewPalette()
	if p == nil {
		return out
	}
	for name, c := range p.All() {
		if keep(name) {
			out.Set(name, c)
		}
	}
	return out
}

func parseAll(names []string) []colors.NameParts {
	parsed := make([]colors.NameParts, 0, len(names))
	for _, name := range names {
		parsed = append(parsed, colors.Parse(name))
	}
	return parsed
}

func matchesAny(list []colors.NameParts, candidate colors.NameParts) bool {
	for _, parts := range list {
		if match(parts, candidate) {
			return true
		}
	}
	return false
}

// match ignores Dark on purpose.
func match(a, b colors.NameParts) bool {
	return a.Base == b.Base && a.P3 == b.P3 && a.Alpha == b.Alpha
}
