package colors

import "iter"

// Palette is an insertion-ordered mapping from color name to Color.
//
// Enumeration order is part of the contract: resolved palettes and the
// semantic classes derived from them are emitted in this order.
type Palette struct {
	m orderedMap[Color]
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{m: newOrderedMap[Color]()}
}

// Set stores c under name. An existing name keeps its position and has its
// color replaced wholesale.
func (p *Palette) Set(name string, c Color) { p.m.set(name, c) }

// Get returns the color stored under name.
func (p *Palette) Get(name string) (Color, bool) { return p.m.get(name) }

// Has reports whether name is present.
func (p *Palette) Has(name string) bool {
	_, ok := p.m.get(name)
	return ok
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.m.keys) }

// Names returns the color names in insertion order.
func (p *Palette) Names() []string { return p.m.keyList() }

// All iterates the palette in insertion order.
func (p *Palette) All() iter.Seq2[string, Color] { return p.m.all() }

// Overlay returns a new palette holding every entry of base followed by
// every entry of top; on collision top's color wins and base's position is
// kept. Neither argument is modified. Nil palettes are treated as empty.
func Overlay(base, top *Palette) *Palette {
	out := NewPalette()
	for _, p := range []*Palette{base, top} {
		if p == nil {
			continue
		}
		for name, c := range p.All() {
			out.Set(name, c)
		}
	}
	return out
}

// orderedMap is a string-keyed map that remembers insertion order.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() orderedMap[V] {
	return orderedMap[V]{values: make(map[string]V)}
}

func (m *orderedMap[V]) set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) keyList() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *orderedMap[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
