package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/yacobolo/radixtw/internal/colors"
	"github.com/yacobolo/radixtw/internal/semantic"
)

// WriteTheme renders the theme palette and components as indented JSON,
// keeping palette and rule order:
//
//	{
//	  "colors": {"black": "#000", "red": {"1": "#fffcfc", ...}},
//	  "components": {".bg-red-app": {"@apply bg-red-1 dark:bg-red-dark-1": {}}}
//	}
//
// The components object uses the shape Tailwind's addComponents accepts.
func WriteTheme(w io.Writer, theme *colors.Palette, comps []semantic.Components) error {
	var buf bytes.Buffer
	e := &objectEncoder{buf: &buf, indent: "  "}

	e.open()
	e.key("colors")
	if err := writeColors(e, theme); err != nil {
		return err
	}
	e.key("components")
	if err := writeComponents(e, comps); err != nil {
		return err
	}
	e.close()
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

func writeColors(e *objectEncoder, theme *colors.Palette) error {
	e.open()
	if theme != nil {
		for name, c := range theme.All() {
			e.key(name)
			if c.IsScalar() {
				if err := e.value(c.Value()); err != nil {
					return fmt.Errorf("encode color %s: %w", name, err)
				}
				continue
			}
			e.open()
			for step, v := range c.Steps().All() {
				e.key(step)
				if err := e.value(v); err != nil {
					return fmt.Errorf("encode color %s step %s: %w", name, step, err)
				}
			}
			e.close()
		}
	}
	e.close()
	return e.err
}

func writeComponents(e *objectEncoder, comps []semantic.Components) error {
	e.open()
	for _, c := range comps {
		for _, rule := range c.Rules {
			e.key(rule.Selector)
			e.open()
			e.key(rule.Apply)
			e.open()
			e.close()
			e.close()
		}
	}
	e.close()
	return e.err
}

// objectEncoder writes indented JSON objects key by key so that insertion
// order survives; map encoding in encoding/json and go-json sorts keys.
type objectEncoder struct {
	buf    *bytes.Buffer
	indent string
	empty  []bool // per open object: no member written yet
	err    error
}

func (e *objectEncoder) open() {
	e.buf.WriteByte('{')
	e.empty = append(e.empty, true)
}

func (e *objectEncoder) close() {
	top := len(e.empty) - 1
	wasEmpty := e.empty[top]
	e.empty = e.empty[:top]
	if !wasEmpty {
		e.newline()
	}
	e.buf.WriteByte('}')
}

func (e *objectEncoder) key(k string) {
	top := len(e.empty) - 1
	if !e.empty[top] {
		e.buf.WriteByte(',')
	}
	e.empty[top] = false
	e.newline()

	if err := e.value(k); err != nil {
		return
	}
	e.buf.WriteString(": ")
}

func (e *objectEncoder) newline() {
	e.buf.WriteByte('\n')
	for range e.empty {
		e.buf.WriteString(e.indent)
	}
}

func (e *objectEncoder) value(v string) error {
	b, err := json.Marshal(v)
	if err != nil {
		if e.err == nil {
			e.err = err
		}
		return err
	}
	e.buf.Write(b)
	return nil
}
