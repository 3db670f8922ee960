package cli

import (
	"os"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initIntervalFlag       string
	initListenFlag         string
	initNoBridgeFlag       bool
	initForce              bool
	initNonInteractiveFlag bool
)

// initCmd creates a new .vitals.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .vitals.yaml configuration",
	Long: `Initialize a new vitals configuration file.

Creates a .vitals.yaml file in the current directory with sensible
defaults. Guides you through the refresh interval and host bridge
settings with interactive prompts.

Examples:
  vitals init
  vitals init --interval 5s --non-interactive
  vitals init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initIntervalFlag, initListenFlag, initNoBridgeFlag, initForce, initNonInteractiveFlag)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for vitals.

Examples:
  # Bash
  vitals completion bash > /etc/bash_completion.d/vitals

  # Zsh
  vitals completion zsh > "${fpath[1]}/_vitals"

  # Fish
  vitals completion fish > ~/.config/fish/completions/vitals.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")
	initCmd.Flags().StringVar(&initListenFlag, "listen", "", "bridge listen address (host:port)")
	initCmd.Flags().BoolVar(&initNoBridgeFlag, "no-bridge", false, "disable the host bridge in the config")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts, use flags and defaults")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
