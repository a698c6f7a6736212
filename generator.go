package radixtw

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"

	"github.com/yacobolo/radixtw/internal/colors"
	"github.com/yacobolo/radixtw/internal/output"
	"github.com/yacobolo/radixtw/internal/palette"
	"github.com/yacobolo/radixtw/internal/source"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}
	log := config.Log
	if log == nil {
		log = os.Stdout
	}

	// 1. Scan and load palette files
	radix, err := loadSources("radix", config.RadixSources, config, log, result)
	if err != nil {
		return nil, err
	}
	tailwind, err := loadSources("tailwind", config.TailwindSources, config, log, result)
	if err != nil {
		return nil, err
	}
	extend, err := loadSources("extend", config.ExtendSources, config, log, result)
	if err != nil {
		return nil, err
	}

	if result.FilesScanned == 0 {
		result.Warnings = append(result.Warnings, "No palette files matched the configured sources")
	}

	// 2. Resolve, seed and extend
	theme := colors.Overlay(palette.Theme(radix, tailwind, config.Options), extend)
	result.Theme = theme
	result.ColorsResolved = theme.Len()

	if config.Verbose {
		fmt.Fprintf(log, "Resolved %d colors (priority %s)\n", theme.Len(), palette.ParsePriority(string(config.Options.Priority)))
	}

	// 3. Derive semantic components
	comps := Semantics(theme, config.Prefix, config.Options)
	result.Components = comps
	result.FamiliesDerived = len(comps)
	for _, c := range comps {
		result.RulesGenerated += len(c.Rules)
	}

	if config.Verbose {
		if config.Options.DisableSemantics {
			fmt.Fprintln(log, "Semantic classes disabled")
		} else {
			fmt.Fprintf(log, "Derived %d semantic families (%d rules)\n", result.FamiliesDerived, result.RulesGenerated)
		}
	}

	// 4. Write outputs
	if config.ThemeFile != "" {
		path := filepath.Join(config.OutputDir, config.ThemeFile)
		if err := writeFile(path, func(w io.Writer) error {
			return output.WriteTheme(w, theme, comps)
		}); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		result.ThemePath = path
	}

	if config.StylesheetFile != "" {
		path := filepath.Join(config.OutputDir, config.StylesheetFile)
		if err := writeFile(path, func(w io.Writer) error {
			return output.WriteStylesheet(w, comps)
		}); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		result.StylesheetPath = path
	}

	return result, nil
}

// loadSources scans one group of patterns and overlays its files in order
func loadSources(group string, patterns []string, config Config, log io.Writer, result *GenerateResult) (*colors.Palette, error) {
	files, stats, err := source.Scan(patterns)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned += stats.FilesScanned
	result.Files = append(result.Files, files...)
	result.FilesSkipped += stats.FilesSkipped

	if config.Verbose {
		fmt.Fprintf(log, "Found %d %s palette files", len(files), group)
		if stats.FilesSkipped > 0 {
			fmt.Fprintf(log, " (%d gitignored)", stats.FilesSkipped)
		}
		fmt.Fprintln(log)
		for _, file := range files {
			fmt.Fprintf(log, "Loading %s\n", file)
		}
	}

	p, warnings := source.LoadAll(files)
	result.Warnings = append(result.Warnings, warnings...)
	return p, nil
}

// writeFile renders into memory and atomically replaces path
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	// #nosec G306 - generated files are meant to be world-readable
	if err := renameio.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
