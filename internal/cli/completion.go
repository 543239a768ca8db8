package cli

import (
	"github.com/spf13/cobra"

	rterrors "github.com/rileyhilliard/rtop/internal/errors"
)

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for rtop.

Examples:
  # Bash
  rtop completion bash > /etc/bash_completion.d/rtop

  # Zsh
  rtop completion zsh > "${fpath[1]}/_rtop"

  # Fish
  rtop completion fish > ~/.config/fish/completions/rtop.fish`,
	ValidArgs: []string{"bash", "fish", "powershell", "zsh"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return rterrors.New(rterrors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
