package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/splitmate/splitmate/internal/backend"
	"github.com/splitmate/splitmate/internal/config"
	"github.com/splitmate/splitmate/internal/metrics"
	"github.com/splitmate/splitmate/internal/models"
	"github.com/splitmate/splitmate/internal/service"
	"github.com/splitmate/splitmate/internal/session"
	"github.com/splitmate/splitmate/internal/storage/sqlite"
	"github.com/splitmate/splitmate/internal/ui"
	"github.com/splitmate/splitmate/pkg/logging"
)

// runCmd launches the interactive app; the bare root command does the same.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive Splitmate client",
	RunE:  runApp,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runApp(cmd *cobra.Command, args []string) error {
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

	api := backend.New(cfg.APIURL, cfg.AnonKey, metrics.NewHTTPClient())
	sessions := session.NewManager(api, store)
	defer sessions.Close()

	sub := sessions.Subscribe(func(s *models.Session) {
		if s != nil {
			slog.Info("session changed", "user_id", s.User.ID)
		} else {
			slog.Info("session cleared")
		}
	})
	defer sub.Unsubscribe()

	if cfg.MetricsAddr != "" {
		go func() {
			slog.Info("Debug metrics listening", "address", cfg.MetricsAddr)
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				slog.Error("Metrics listener failed", "error", err)
			}
		}()
	}

	term := ui.NewTerminal(os.Stdin, os.Stdout)
	app := ui.New(term,
		sessions,
		service.NewGroupService(api, sessions),
		service.NewExpenseService(api, sessions),
	)
	return app.Run(cmd.Context())
}
