package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .radixtw.yaml config file",
	Long:  `Create a .radixtw.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# radixtw configuration
# Docs: https://github.com/yacobolo/radixtw

# Shared settings
verbose: false
prefix: ""                 # Tailwind prefix, e.g. "tw-"

# Palette resolution
priority: no-tailwind      # no-tailwind | radix-first | tailwind-first
disable-semantics: false
include: []                # empty = every color
exclude: []
aliases: {}                # e.g. {gray: neutral}

# Generation settings
generate:
  radix:
    - "palettes/radix/*.json"
  tailwind:
    - "palettes/tailwind/*.json"
  extend:
    - "palettes/extend/**/*.{json,css}"
  output-dir: web/styles
  theme-file: radix-theme.json
  stylesheet-file: radix-components.css

# Watch settings
watch:
  debounce: 200ms
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
