// Package source loads raw palettes from JSON and CSS files.
package source

import (
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/json"

	"github.com/yacobolo/radixtw/internal/colors"
)

// ParseJSON reads a palette object, preserving key order:
//
//	{"blue": {"blue1": "#fbfdff", ...}, "black": "#000"}
//
// Object values become stepped colors, string values scalar colors.
func ParseJSON(content []byte) (*colors.Palette, error) {
	r := &jsonReader{p: json.NewParser(parse.NewInputBytes(content))}

	if gt, _ := r.next(); gt != json.StartObjectGrammar {
		return nil, r.fail("palette must be a JSON object")
	}

	p := colors.NewPalette()
	for {
		gt, key := r.next()
		if gt == json.EndObjectGrammar {
			return p, nil
		}
		if gt != json.StringGrammar {
			return nil, r.fail("expected color name")
		}
		name := unquote(key)

		gt, value := r.next()
		switch gt {
		case json.StringGrammar:
			p.Set(name, colors.Scalar(unquote(value)))
		case json.NumberGrammar, json.LiteralGrammar:
			p.Set(name, colors.Scalar(string(value)))
		case json.StartObjectGrammar:
			steps, err := r.readSteps(name)
			if err != nil {
				return nil, err
			}
			p.Set(name, colors.Stepped(steps))
		default:
			return nil, r.fail(fmt.Sprintf("unsupported value for color %q", name))
		}
	}
}

type jsonReader struct {
	p *json.Parser
}

// next skips whitespace grammar.
func (r *jsonReader) next() (json.GrammarType, []byte) {
	for {
		gt, data := r.p.Next()
		if gt != json.WhitespaceGrammar {
			return gt, data
		}
	}
}

// readSteps reads a flat {"step": "value"} object after its opening brace.
func (r *jsonReader) readSteps(name string) (*colors.Steps, error) {
	steps := colors.NewSteps()
	for {
		gt, key := r.next()
		if gt == json.EndObjectGrammar {
			return steps, nil
		}
		if gt != json.StringGrammar {
			return nil, r.fail(fmt.Sprintf("expected step name in color %q", name))
		}

		gt, value := r.next()
		switch gt {
		case json.StringGrammar:
			steps.Set(unquote(key), unquote(value))
		case json.NumberGrammar, json.LiteralGrammar:
			steps.Set(unquote(key), string(value))
		default:
			return nil, r.fail(fmt.Sprintf("step %s of color %q must be a string", unquote(key), name))
		}
	}
}

func (r *jsonReader) fail(msg string) error {
	if err := r.p.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return errors.New(msg)
}

// unquote decodes a JSON string token, escapes included.
func unquote(data []byte) string {
	var s string
	if err := gojson.Unmarshal(data, &s); err == nil {
		return s
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return string(data[1 : len(data)-1])
	}
	return string(data)
}
