package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/radixtw/internal/colors"
	"github.com/yacobolo/radixtw/internal/semantic"
)

func sampleComponents() []semantic.Components {
	return []semantic.Components{
		{
			Name:       "red",
			Dark:       "red-dark",
			Foreground: "",
			Rules: []semantic.Rule{
				{Selector: ".bg-red-app", Apply: "@apply bg-red-1 dark:bg-red-dark-1"},
				{Selector: ".text-red-dim", Apply: "@apply text-red-11 dark:text-red-dark-11"},
			},
		},
		{
			Name:       "slate",
			Dark:       "slate-dark",
			Foreground: "slate-dark",
			Rules: []semantic.Rule{
				{Selector: ".bg-slate-app", Apply: "@apply bg-slate-1 dark:bg-slate-dark-1"},
			},
		},
	}
}

func TestWriteStylesheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStylesheet(&buf, sampleComponents()))

	want := StylesheetHeader + `
@layer components {
  /* red */
  .bg-red-app {
    @apply bg-red-1 dark:bg-red-dark-1;
  }
  .text-red-dim {
    @apply text-red-11 dark:text-red-dark-11;
  }

  /* slate */
  .bg-slate-app {
    @apply bg-slate-1 dark:bg-slate-dark-1;
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteStylesheetEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStylesheet(&buf, nil))
	assert.Equal(t, StylesheetHeader, buf.String())
}

func TestWriteTheme(t *testing.T) {
	theme := colors.NewPalette()
	theme.Set("white", colors.Scalar("#fff"))
	theme.Set("black", colors.Scalar("#000"))
	theme.Set("red", colors.Stepped(colors.StepsOf("2", "#fff7f7", "1", "#fffcfc", "10", "#dc3e42")))

	var buf bytes.Buffer
	require.NoError(t, WriteTheme(&buf, theme, sampleComponents()[:1]))

	want := `{
  "colors": {
    "white": "#fff",
    "black": "#000",
    "red": {
      "2": "#fff7f7",
      "1": "#fffcfc",
      "10": "#dc3e42"
    }
  },
  "components": {
    ".bg-red-app": {
      "@apply bg-red-1 dark:bg-red-dark-1": {}
    },
    ".text-red-dim": {
      "@apply text-red-11 dark:text-red-dark-11": {}
    }
  }
}
`
	assert.Equal(t, want, buf.String())

	// Output stays valid JSON
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "colors")
}

func TestWriteThemeEscapes(t *testing.T) {
	theme := colors.NewPalette()
	theme.Set(`odd"name`, colors.Scalar(`color(display-p3 1 0 0)`))

	var buf bytes.Buffer
	require.NoError(t, WriteTheme(&buf, theme, nil))

	var decoded struct {
		Colors     map[string]string   `json:"colors"`
		Components map[string]struct{} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "color(display-p3 1 0 0)", decoded.Colors[`odd"name`])
	assert.Empty(t, decoded.Components)
}

func TestWriteThemeNilPalette(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTheme(&buf, nil, nil))
	assert.Equal(t, "{\n  \"colors\": {},\n  \"components\": {}\n}\n", buf.String())
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "short hex", value: "#fff", want: true},
		{name: "long hex", value: "#e5484d", want: true},
		{name: "alpha hex", value: "#ff000080", want: false},
		{name: "keyword", value: "currentColor", want: false},
		{name: "p3", value: "color(display-p3 1 0 0)", want: false},
		{name: "bad digits", value: "#ggg", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isHex(tt.value))
			assert.Empty(t, Swatch(tt.value, false))
		})
	}
}

func TestReporterPlain(t *testing.T) {
	theme := colors.NewPalette()
	theme.Set("red", colors.Stepped(colors.StepsOf("9", "#e5484d")))

	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	assert.False(t, r.UseColors())

	r.PrintFamilies(theme, sampleComponents())
	r.PrintWarnings([]string{"Failed to load a.json: boom"})
	r.PrintSummary(Summary{
		FilesScanned:    1,
		ColorsResolved:  2,
		FamiliesDerived: 2,
		RulesGenerated:  3,
		ThemePath:       "out/theme.json",
		Warnings:        []string{"Failed to load a.json: boom"},
	})

	out := buf.String()
	assert.Contains(t, out, "Semantic families:")
	assert.Contains(t, out, "red   (dark: red-dark)")
	assert.Contains(t, out, "slate (dark: slate-dark, text: slate-dark)")
	assert.Contains(t, out, "Warnings (1):\n  Failed to load a.json: boom")
	assert.Contains(t, out, "Resolved 2 colors from 1 file: 2 families, 3 rules")
	assert.Contains(t, out, "Wrote out/theme.json\n")
	assert.Contains(t, out, "1 warning")
	assert.NotContains(t, out, "\x1b[")
}

func TestReporterNothingToPrint(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.PrintFamilies(nil, nil)
	r.PrintWarnings(nil)
	assert.Empty(t, buf.String())

	r.PrintSummary(Summary{})
	assert.Equal(t, "Resolved 0 colors from 0 files: 0 families, 0 rules\n", buf.String())
	assert.False(t, strings.Contains(buf.String(), "Wrote"))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 rule", pluralizeCount(1, "rule", "rules"))
	assert.Equal(t, "0 rules", pluralizeCount(0, "rule", "rules"))
	assert.Equal(t, "12 rules", pluralizeCount(12, "rule", "rules"))
}
