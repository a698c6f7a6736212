package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/yacobolo/radixtw"
	"github.com/yacobolo/radixtw/internal/output"
	"github.com/yacobolo/radixtw/internal/source"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever palette files change",
	Long: `Generate once, then watch the palette source directories and regenerate
after every change until interrupted.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	addGenerateFlags(watchCmd)
	watchCmd.Flags().Duration("debounce", 0, "Quiet period before regenerating (default 200ms)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)

	regenerate := func() (*radixtw.GenerateResult, error) {
		result, err := radixtw.Generate(config)
		if err != nil {
			return nil, fmt.Errorf("generation failed: %w", err)
		}
		if !quiet {
			report(config.Log, config, result)
		}
		return result, nil
	}

	result, err := regenerate()
	if err != nil {
		return err
	}

	paths := watchPaths(config, result.Files)
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch: no source directory exists")
	}

	debounce := getDurationWithFallback("debounce", "watch.debounce", defaultDebounce)
	w, err := source.NewWatcher(paths, debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	w.Ignore(result.ThemePath, result.StylesheetPath)
	w.OnError(func(err error) {
		fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		useColors := output.ShouldUseColors(getBoolWithFallback("color", "color", false))
		fmt.Fprintln(config.Log, output.RenderStyle(output.StyleGray,
			fmt.Sprintf("Watching %d paths, press Ctrl+C to stop", len(paths)), useColors))
	}

	err = w.Run(ctx, func() {
		if _, err := regenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchPaths returns the existing static base directory of every source
// pattern plus every loaded file.
func watchPaths(config radixtw.Config, files []string) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		if _, err := os.Stat(p); err != nil {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	groups := [][]string{config.RadixSources, config.TailwindSources, config.ExtendSources}
	for _, patterns := range groups {
		for _, pattern := range patterns {
			base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
			add(filepath.FromSlash(base))
		}
	}
	for _, file := range files {
		add(file)
	}

	return paths
}
