package radixtw

import "io"

// Config holds configuration for generation
type Config struct {
	// Glob patterns (doublestar syntax) for palette files. JSON files hold
	// {"name": {"step": "value"} | "value"}; CSS files hold custom properties.
	RadixSources    []string
	TailwindSources []string
	// ExtendSources are custom colors overlaid on the resolved theme.
	ExtendSources []string

	OutputDir      string // Directory for generated files
	ThemeFile      string // Theme JSON file name, "" to skip
	StylesheetFile string // Component stylesheet file name, "" to skip

	Prefix  string  // Tailwind class prefix
	Options Options // Resolution options

	Verbose bool
	Log     io.Writer // Verbose output, defaults to stdout
}

// GenerateResult contains generation statistics
type GenerateResult struct {
	FilesScanned    int
	FilesSkipped    int // gitignored
	ColorsResolved  int
	FamiliesDerived int
	RulesGenerated  int
	Warnings        []string

	Files      []string // Loaded palette files, in load order
	Theme      *Palette
	Components []Components

	ThemePath      string // Written theme file, "" if skipped
	StylesheetPath string // Written stylesheet, "" if skipped
}
