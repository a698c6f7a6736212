package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/radixtw/internal/colors"
)

// ScanStats tracks palette file discovery
type ScanStats struct {
	FilesDiscovered int // Files matched by the glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files dropped by .gitignore
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads ./.gitignore once; a missing file disables filtering.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a relative path is gitignored. Absolute
// paths are never filtered.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// Scan expands doublestar glob patterns into a deduplicated list of files,
// in pattern order.
func Scan(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// IsPaletteFile reports whether path has an extension Load understands.
func IsPaletteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".css":
		return true
	}
	return false
}

// Load reads one palette file, choosing the format by extension.
func Load(path string) (*colors.Palette, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		p, err := ParseJSON(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return p, nil
	case ".css":
		return ParseCSS(string(content)), nil
	default:
		return nil, fmt.Errorf("unsupported palette file %s (want .json or .css)", path)
	}
}

// LoadAll loads every file and overlays them in order, later files winning
// on name collisions. Files that fail to load are reported as warnings and
// skipped.
func LoadAll(paths []string) (*colors.Palette, []string) {
	merged := colors.NewPalette()
	var warnings []string

	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Failed to load %s: %v", path, err))
			continue
		}
		merged = colors.Overlay(merged, p)
	}

	return merged, warnings
}
