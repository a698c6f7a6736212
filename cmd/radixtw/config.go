package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/radixtw"
)

const (
	defaultConfigPath = ".radixtw.yaml"
	dotEnvPath        = ".env"
)

var k = koanf.New(".")

// Defaults used when neither flags, env nor the config file set a value
var (
	defaultRadixSources    = []string{"palettes/radix/*.json"}
	defaultTailwindSources = []string{"palettes/tailwind/*.json"}
	defaultExtendSources   = []string{"palettes/extend/**/*.{json,css}"}
)

const (
	defaultOutputDir      = "web/styles"
	defaultThemeFile      = "radix-theme.json"
	defaultStylesheetFile = "radix-components.css"
	defaultDebounce       = 200 * time.Millisecond
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set
	// override keys already loaded)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (RADIXTW_* prefix), including any .env file
	// in the working directory; variables already set are not overridden
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return fmt.Errorf("loading %s: %w", dotEnvPath, err)
		}
	}
	if err := k.Load(env.Provider("RADIXTW_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envSections are the nested config sections reachable from the environment.
var envSections = []string{"generate", "watch", "aliases"}

// envKey maps an environment variable onto its config key. The first
// segment selects a section; the remaining underscores become dashes:
//
//	RADIXTW_GENERATE_OUTPUT_DIR -> generate.output-dir
//	RADIXTW_WATCH_DEBOUNCE      -> watch.debounce
//	RADIXTW_DISABLE_SEMANTICS   -> disable-semantics
//	RADIXTW_ALIASES_GRAY        -> aliases.gray
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "RADIXTW_"))
	for _, section := range envSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			if section == "aliases" {
				return section + "." + rest
			}
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() radixtw.Config {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	if getBoolWithFallback("quiet", "quiet", false) {
		verbose = false
	}

	return radixtw.Config{
		RadixSources:    getStringsWithFallback("radix", "generate.radix", defaultRadixSources),
		TailwindSources: getStringsWithFallback("tailwind", "generate.tailwind", defaultTailwindSources),
		ExtendSources:   getStringsWithFallback("extend", "generate.extend", defaultExtendSources),
		OutputDir:       getStringWithFallback("output-dir", "generate.output-dir", defaultOutputDir),
		ThemeFile:       getStringWithFallback("theme-file", "generate.theme-file", defaultThemeFile),
		StylesheetFile:  getStringWithFallback("stylesheet-file", "generate.stylesheet-file", defaultStylesheetFile),
		Prefix:          k.String("prefix"),
		Options:         buildOptions(),
		Verbose:         verbose,
		Log:             os.Stdout,
	}
}

// buildOptions constructs the resolution options. An empty include list
// means no restriction.
func buildOptions() radixtw.Options {
	opts := radixtw.Options{
		Aliases:          buildAliases(),
		DisableSemantics: getBoolWithFallback("disable-semantics", "disable-semantics", false),
		Exclude:          k.Strings("exclude"),
		Priority:         radixtw.ParsePriority(k.String("priority")),
	}
	if include := k.Strings("include"); len(include) > 0 {
		opts.Include = include
	}
	return opts
}

// buildAliases reads --alias from=to pairs, falling back to the aliases map
// of the config file.
func buildAliases() map[string]string {
	if pairs := k.Strings("alias"); len(pairs) > 0 {
		aliases := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			from, to, ok := strings.Cut(pair, "=")
			from, to = strings.TrimSpace(from), strings.TrimSpace(to)
			if !ok || from == "" || to == "" {
				continue
			}
			aliases[from] = to
		}
		return aliases
	}
	if aliases := k.StringMap("aliases"); len(aliases) > 0 {
		return aliases
	}
	return nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if v := k.Duration(flagKey); v > 0 {
		return v
	}
	if v := k.Duration(configKey); v > 0 {
		return v
	}
	return defaultVal
}
