package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/radixtw"
)

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion scripts",
	Long:      `Generate shell completion scripts for radixtw commands and flags.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

// registerFlagCompletions offers palette-aware values for the generation flags.
func registerFlagCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("priority", cobra.FixedCompletions([]string{
		string(radixtw.PriorityNoTailwind) + "\tdrop the Tailwind palette",
		string(radixtw.PriorityRadixFirst) + "\tRadix wins on conflict",
		string(radixtw.PriorityTailwindFirst) + "\tTailwind wins on conflict",
	}, cobra.ShellCompDirectiveNoFileComp))

	for _, name := range []string{"radix", "tailwind", "extend"} {
		_ = cmd.MarkFlagFilename(name, "json", "css")
	}
	_ = cmd.MarkFlagDirname("output-dir")
	_ = cmd.MarkFlagFilename("theme-file", "json")
	_ = cmd.MarkFlagFilename("stylesheet-file", "css")
}
