package source

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/radixtw/internal/colors"
)

// darkSelectors mark a rule block as holding dark variants.
var darkSelectors = map[string]bool{
	"dark":       true,
	"dark-theme": true,
}

// cssState tracks rule nesting while reading custom properties
type cssState struct {
	palette     *colors.Palette
	pendingDark bool   // dark class seen in the current prelude
	blocks      []bool // dark flag per open block
}

// ParseCSS reads color custom properties from a stylesheet:
//
//	:root { --brand-1: #fdfdfe; --brand-a1: #00000003; --accent: #ff0; }
//	.dark { --brand-1: #111113; }
//
// "--<name>-<n>" becomes step n of <name>, "--<name>-a<n>" step n of
// <name>-a, anything else a scalar. Properties declared inside a .dark or
// .dark-theme rule land in the "-dark" variant. Colors appear in the order
// they are first declared.
func ParseCSS(content string) *colors.Palette {
	s := &cssState{palette: colors.NewPalette()}
	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			// EOF or unrecoverable input, either way we are done
			return s.palette

		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			if tt2, ident := lexer.Next(); tt2 == css.IdentToken && darkSelectors[string(ident)] {
				s.pendingDark = true
			}

		case tt == css.LeftBraceToken:
			s.openBlock()

		case tt == css.RightBraceToken:
			s.closeBlock()

		case tt == css.SemicolonToken:
			s.pendingDark = false

		case isCustomProperty(tt, text):
			s.handleCustomProperty(lexer, string(text))
		}
	}
}

func isCustomProperty(tt css.TokenType, text []byte) bool {
	if tt != css.CustomPropertyNameToken && tt != css.IdentToken {
		return false
	}
	return len(text) > 2 && text[0] == '-' && text[1] == '-'
}

func (s *cssState) inDark() bool {
	return len(s.blocks) > 0 && s.blocks[len(s.blocks)-1]
}

func (s *cssState) openBlock() {
	s.blocks = append(s.blocks, s.pendingDark || s.inDark())
	s.pendingDark = false
}

func (s *cssState) closeBlock() {
	if len(s.blocks) > 0 {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}
}

// handleCustomProperty reads ": value" up to ';' or '}' and records it.
func (s *cssState) handleCustomProperty(lexer *css.Lexer, property string) {
	var value []string
	seenColon := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken || tt == css.RightBraceToken {
			if seenColon {
				s.record(property, strings.TrimSpace(strings.Join(value, "")))
			}
			if tt == css.RightBraceToken {
				s.closeBlock()
			}
			return
		}

		switch {
		case !seenColon && tt == css.ColonToken:
			seenColon = true
		case !seenColon && tt == css.WhitespaceToken:
			continue
		case !seenColon:
			// Not a declaration (e.g. a selector that happens to start with --)
			if tt == css.LeftBraceToken {
				s.openBlock()
			}
			return
		case tt == css.CommentToken:
			continue
		default:
			value = append(value, string(text))
		}
	}
}

func (s *cssState) record(property, value string) {
	if value == "" {
		return
	}

	name, step := splitProperty(strings.TrimPrefix(property, "--"))

	parts := colors.Parse(name)
	if s.inDark() {
		parts.Dark = true
	}
	name = colors.Build(parts)

	if step == "" {
		s.palette.Set(name, colors.Scalar(value))
		return
	}

	c, ok := s.palette.Get(name)
	if !ok || c.IsScalar() {
		c = colors.Stepped(colors.NewSteps())
		s.palette.Set(name, c)
	}
	c.Steps().Set(step, value)
}

// splitProperty separates the trailing step from a property name:
//
//	"red-12" -> ("red", "12"), "red-a3" -> ("red-a", "3"), "accent" -> ("accent", "")
func splitProperty(name string) (string, string) {
	i := strings.LastIndexByte(name, '-')
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}

	family, last := name[:i], name[i+1:]
	if isDigits(last) {
		return family, last
	}
	if len(last) > 1 && last[0] == 'a' && isDigits(last[1:]) {
		return family + "-a", last[1:]
	}
	return name, ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
