package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yacobolo/radixtw/internal/colors"
	"github.com/yacobolo/radixtw/internal/semantic"
)

// Summary is what the reporter needs to know about one generation run
type Summary struct {
	FilesScanned    int
	ColorsResolved  int
	FamiliesDerived int
	RulesGenerated  int
	ThemePath       string
	StylesheetPath  string
	Warnings        []string
}

// Reporter handles formatting and outputting generation results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintFamilies lists each derived family with its dark partner, foreground
// and a swatch of step 9.
func (r *Reporter) PrintFamilies(theme *colors.Palette, comps []semantic.Components) {
	if len(comps) == 0 {
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Semantic families:", r.useColors))

	width := 0
	for _, c := range comps {
		width = max(width, len(c.Name))
	}

	for _, c := range comps {
		swatch := ""
		if theme != nil {
			if color, ok := theme.Get(c.Name); ok {
				if v, ok := color.Step("9"); ok {
					swatch = Swatch(v, r.useColors)
				}
			}
		}
		if swatch == "" {
			swatch = "  "
		}

		detail := "dark: " + c.Dark
		if c.Foreground != "" {
			detail += ", text: " + c.Foreground
		}
		fmt.Fprintf(r.w, "  %s %-*s %s\n", swatch, width, c.Name,
			RenderStyle(StyleGray, "("+detail+")", r.useColors))
	}
	fmt.Fprintln(r.w)
}

// PrintWarnings outputs collected warnings
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleYellow, fmt.Sprintf("Warnings (%d):", len(warnings)), r.useColors))
	for _, warning := range warnings {
		fmt.Fprintf(r.w, "  %s\n", warning)
	}
	fmt.Fprintln(r.w)
}

// PrintSummary outputs the run statistics and written files
func (r *Reporter) PrintSummary(s Summary) {
	fmt.Fprintf(r.w, "%s from %s: %s, %s\n",
		RenderStyle(StyleGreen, "Resolved "+pluralizeCount(s.ColorsResolved, "color", "colors"), r.useColors),
		pluralizeCount(s.FilesScanned, "file", "files"),
		pluralizeCount(s.FamiliesDerived, "family", "families"),
		pluralizeCount(s.RulesGenerated, "rule", "rules"))

	var written []string
	for _, path := range []string{s.ThemePath, s.StylesheetPath} {
		if path != "" {
			written = append(written, RenderStyle(StyleCyan, path, r.useColors))
		}
	}
	if len(written) > 0 {
		fmt.Fprintf(r.w, "Wrote %s\n", strings.Join(written, ", "))
	}

	if len(s.Warnings) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(len(s.Warnings), "warning", "warnings"), r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
