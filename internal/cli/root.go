package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root command flags
var (
	configFlag   string
	intervalFlag string
	noBridgeFlag bool
)

// rootCmd is the top-level vitals command. Running it with no
// subcommand starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Real-time system metrics dashboard",
	Long: `vitals is an interactive terminal dashboard showing live system metrics.

Displays CPU, RAM, disk, GPU, and processor load with color-coded
status indicators, refreshed every 2 seconds. An embedding host can
connect over the bridge WebSocket to push metric updates and receive
action signals.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  left/right  Previous / next page (also h/l)
  1-5         Jump to page
  up/down     Select action (also k/j)
  Enter       Send selected action to the host

Examples:
  vitals
  vitals --interval 5s
  vitals --no-bridge`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(configFlag, intervalFlag, noBridgeFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")
	rootCmd.Flags().BoolVar(&noBridgeFlag, "no-bridge", false, "disable the host bridge server")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
