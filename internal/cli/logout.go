package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/config"
	"github.com/splitmate/splitmate/internal/session"
	"github.com/splitmate/splitmate/internal/storage/sqlite"
	"github.com/splitmate/splitmate/pkg/logging"
)

// logoutCmd clears the cached session without launching the app, revoking it
// remotely when possible.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup()

		cfg, err := config.Load()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			return err
		}

		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to open session cache", "error", err)
			return err
		}
		defer store.Close()

		api := backend.New(cfg.APIURL, cfg.AnonKey, nil)
		sessions := session.NewManager(api, store)
		defer sessions.Close()

		sessions.Restore(cmd.Context())
		if err := sessions.SignOut(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
