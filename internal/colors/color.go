package colors

import (
	"iter"
	"strconv"
)

// RequiredSteps are the scale steps a color needs before semantic classes
// can be generated for it.
var RequiredSteps = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

// Color is either a single value (hex literal, color function, keyword) or
// an ordered mapping from scale step to value. Values are opaque strings.
//
// Colors are shared between palettes and must not be modified once placed
// in one.
type Color struct {
	value string
	steps *Steps
}

// Scalar returns a single-valued color.
func Scalar(value string) Color {
	return Color{value: value}
}

// Stepped returns a color backed by a step mapping.
func Stepped(steps *Steps) Color {
	if steps == nil {
		steps = NewSteps()
	}
	return Color{steps: steps}
}

// IsScalar reports whether the color has no steps.
func (c Color) IsScalar() bool {
	return c.steps == nil
}

// Value returns the scalar value, or "" for stepped colors.
func (c Color) Value() string {
	return c.value
}

// Steps returns the step mapping, or nil for scalar colors.
func (c Color) Steps() *Steps {
	return c.steps
}

// Step returns the value at the given step.
func (c Color) Step(step string) (string, bool) {
	if c.steps == nil {
		return "", false
	}
	return c.steps.Get(step)
}

// IsComplete reports whether the color is stepped and every required step
// maps to a non-empty value.
func (c Color) IsComplete(required []string) bool {
	if c.steps == nil {
		return false
	}
	for _, step := range required {
		if v, ok := c.steps.Get(step); !ok || v == "" {
			return false
		}
	}
	return true
}

// Steps is an insertion-ordered mapping from step key to value.
type Steps struct {
	m orderedMap[string]
}

// NewSteps returns an empty step mapping.
func NewSteps() *Steps {
	return &Steps{m: newOrderedMap[string]()}
}

// StepsOf builds a step mapping from alternating key, value arguments.
// A trailing key without a value is ignored.
func StepsOf(kv ...string) *Steps {
	s := NewSteps()
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i], kv[i+1])
	}
	return s
}

// Scale builds a 1..n step mapping using value(step) for each step.
func Scale(n int, value func(step int) string) *Steps {
	s := NewSteps()
	for step := 1; step <= n; step++ {
		s.Set(strconv.Itoa(step), value(step))
	}
	return s
}

// Set stores value under key, keeping the key's original position if it
// already exists.
func (s *Steps) Set(key, value string) { s.m.set(key, value) }

// Get returns the value under key.
func (s *Steps) Get(key string) (string, bool) { return s.m.get(key) }

// Keys returns the step keys in insertion order.
func (s *Steps) Keys() []string { return s.m.keyList() }

// Len returns the number of steps.
func (s *Steps) Len() int { return len(s.m.keys) }

// All iterates steps in insertion order.
func (s *Steps) All() iter.Seq2[string, string] { return s.m.all() }
