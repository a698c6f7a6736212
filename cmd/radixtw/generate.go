package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/radixtw"
	"github.com/yacobolo/radixtw/internal/output"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the theme palette and semantic classes",
	Long: `Load Radix and Tailwind palette files, resolve them into one theme palette,
derive semantic component classes and write the theme JSON and stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generation flags. Defaults stay empty so
// that config file values are not shadowed; real defaults live in
// buildGenerateConfig.
func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("radix", nil, "Glob patterns for Radix palette files (JSON or CSS)")
	f.StringSlice("tailwind", nil, "Glob patterns for Tailwind palette files")
	f.StringSlice("extend", nil, "Glob patterns for custom colors added to the theme")
	f.String("output-dir", "", "Output directory for generated files (default "+defaultOutputDir+")")
	f.String("theme-file", "", "Theme JSON file name (default "+defaultThemeFile+")")
	f.String("stylesheet-file", "", "Component stylesheet file name (default "+defaultStylesheetFile+")")
	f.String("prefix", "", "Tailwind class prefix, e.g. tw-")
	f.String("priority", "", "Conflict priority: no-tailwind|radix-first|tailwind-first")
	f.StringSlice("include", nil, "Only keep these colors (e.g. red,sage)")
	f.StringSlice("exclude", nil, "Drop these colors")
	f.StringSlice("alias", nil, "Rename Radix families, from=to (e.g. gray=neutral)")
	f.Bool("disable-semantics", false, "Skip semantic class generation")

	registerFlagCompletions(cmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := radixtw.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		report(config.Log, config, result)
	}

	return nil
}

// report prints the generation summary
func report(w io.Writer, config radixtw.Config, result *radixtw.GenerateResult) {
	reporter := output.NewReporter(w, output.ShouldUseColors(getBoolWithFallback("color", "color", false)))

	if config.Verbose {
		reporter.PrintFamilies(result.Theme, result.Components)
	}
	reporter.PrintWarnings(result.Warnings)
	reporter.PrintSummary(output.Summary{
		FilesScanned:    result.FilesScanned,
		ColorsResolved:  result.ColorsResolved,
		FamiliesDerived: result.FamiliesDerived,
		RulesGenerated:  result.RulesGenerated,
		ThemePath:       result.ThemePath,
		StylesheetPath:  result.StylesheetPath,
		Warnings:        result.Warnings,
	})
}
