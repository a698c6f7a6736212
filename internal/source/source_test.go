package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	content := `{
		"blueDark": {"blue1": "#0d1520", "blue2": "#111927", "blue12": "#c2e6ff"},
		"blue": {"blue1": "#fbfdff", "blue2": "#f4faff"},
		"black": "#000",
		"zinc": {"50": "#fafafa", "950": "#09090b"},
		"escaped": "color(display-p3 0.1 \"x\")"
	}`

	p, err := ParseJSON([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"blueDark", "blue", "black", "zinc", "escaped"}, p.Names())

	blueDark, _ := p.Get("blueDark")
	assert.Equal(t, []string{"blue1", "blue2", "blue12"}, blueDark.Steps().Keys())
	v, _ := blueDark.Step("blue12")
	assert.Equal(t, "#c2e6ff", v)

	black, _ := p.Get("black")
	assert.True(t, black.IsScalar())
	assert.Equal(t, "#000", black.Value())

	zinc, _ := p.Get("zinc")
	assert.Equal(t, []string{"50", "950"}, zinc.Steps().Keys())

	escaped, _ := p.Get("escaped")
	assert.Equal(t, `color(display-p3 0.1 "x")`, escaped.Value())
}

func TestParseJSONEscapes(t *testing.T) {
	p, err := ParseJSON([]byte(`{"a\/b": "x", "\u0072ed": {"red\u0031": "#f00"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b", "red"}, p.Names())

	red, _ := p.Get("red")
	v, ok := red.Step("red1")
	require.True(t, ok)
	assert.Equal(t, "#f00", v)
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not an object", content: `["red"]`},
		{name: "empty", content: ``},
		{name: "nested array", content: `{"red": ["#f00"]}`},
		{name: "deep nesting", content: `{"red": {"1": {"x": "y"}}}`},
		{name: "truncated", content: `{"red": {"1": "#f00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.content))
			require.Error(t, err)
		})
	}
}

func TestParseCSS(t *testing.T) {
	content := `
/* brand scale */
:root, .light {
  --brand-1: #fdfdfe;
  --brand-2: #f7f9ff;
  --brand-a1: #00008003;
  --accent: #ff0;
}

.dark, .dark-theme {
  --brand-1: #111113;
  --brand-2: color(display-p3 0.1 0.1 0.2);
}

.card { color: var(--brand-1); }
`

	p := ParseCSS(content)
	assert.Equal(t, []string{"brand", "brand-a", "accent", "brand-dark"}, p.Names())

	brand, _ := p.Get("brand")
	assert.Equal(t, []string{"1", "2"}, brand.Steps().Keys())
	v, _ := brand.Step("2")
	assert.Equal(t, "#f7f9ff", v)

	alpha, _ := p.Get("brand-a")
	v, _ = alpha.Step("1")
	assert.Equal(t, "#00008003", v)

	accent, _ := p.Get("accent")
	assert.Equal(t, "#ff0", accent.Value())

	dark, _ := p.Get("brand-dark")
	v, _ = dark.Step("2")
	assert.Equal(t, "color(display-p3 0.1 0.1 0.2)", v)
}

func TestParseCSSDarkAlpha(t *testing.T) {
	p := ParseCSS(`.dark { --red-a1: #f00; } :root { --red-3: #e00 }`)
	assert.Equal(t, []string{"red-dark-a", "red"}, p.Names())
}

func TestParseCSSNestedBlockKeepsDark(t *testing.T) {
	p := ParseCSS(`.dark { --x { --y: 1 } --red-1: #f00; } :root { --red-2: #e00; }`)

	dark, ok := p.Get("red-dark")
	require.True(t, ok)
	v, _ := dark.Step("1")
	assert.Equal(t, "#f00", v)

	light, ok := p.Get("red")
	require.True(t, ok)
	assert.Equal(t, []string{"2"}, light.Steps().Keys())
}

func TestSplitProperty(t *testing.T) {
	tests := []struct {
		input  string
		family string
		step   string
	}{
		{"red-12", "red", "12"},
		{"red-a3", "red-a", "3"},
		{"sky-blue-4", "sky-blue", "4"},
		{"accent", "accent", ""},
		{"accent-", "accent-", ""},
		{"-1", "-1", ""},
		{"red-ab", "red-ab", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			family, step := splitProperty(tt.input)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.step, step)
		})
	}
}

func TestScanAndLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "radix", "nested"), 0755))

	jsonFile := filepath.Join(dir, "radix", "blue.json")
	cssFile := filepath.Join(dir, "radix", "nested", "brand.css")
	badFile := filepath.Join(dir, "radix", "broken.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"blue": {"blue1": "#fbfdff"}, "red": "#f00"}`), 0644))
	require.NoError(t, os.WriteFile(cssFile, []byte(`:root { --red: #e00; }`), 0644))
	require.NoError(t, os.WriteFile(badFile, []byte(`{`), 0644))

	files, stats, err := Scan([]string{
		filepath.Join(dir, "radix", "*.json"),
		filepath.Join(dir, "radix", "**", "*.css"),
		filepath.Join(dir, "radix", "blue.json"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 3)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)

	palette, warnings := LoadAll([]string{jsonFile, cssFile, badFile})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "broken.json")

	assert.Equal(t, []string{"blue", "red"}, palette.Names())
	red, _ := palette.Get("red")
	assert.Equal(t, "#e00", red.Value())

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	yamlFile := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("red: '#f00'"), 0644))
	_, err = Load(yamlFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported palette file")
}

func TestScanBadPattern(t *testing.T) {
	_, _, err := Scan([]string{"[unclosed"})
	require.Error(t, err)
}

func TestIsPaletteFile(t *testing.T) {
	assert.True(t, IsPaletteFile("a/b/radix.json"))
	assert.True(t, IsPaletteFile("brand.CSS"))
	assert.False(t, IsPaletteFile("brand.css.swp"))
	assert.False(t, IsPaletteFile("dir"))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "brand.css")
	require.NoError(t, os.WriteFile(file, []byte(`:root { --brand: #000; }`), 0644))

	w, err := NewWatcher([]string{file}, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	output := filepath.Join(dir, "theme.json")
	w.Ignore(output)

	// Unrelated files and ignored outputs do not count
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(output, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(file, []byte(`:root { --brand: #fff; }`), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
