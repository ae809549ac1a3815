// Package cli defines the splitmate command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Running it launches the app, same as `splitmate run`.
var rootCmd = &cobra.Command{
	Use:   "splitmate",
	Short: "Splitmate - share expenses with your friends",
	Long: `Splitmate is a terminal client for the hosted Splitmate service.
Sign in, browse your groups, and review each group's shared expenses.

Configuration comes from the environment (or a .env file):
SPLITMATE_API_URL and SPLITMATE_ANON_KEY identify the deployment,
DB_PATH places the local session cache, and METRICS_ADDR optionally
exposes debug metrics.`,
	SilenceUsage: true,
	RunE:         runApp,
}

// Execute runs the command tree. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
