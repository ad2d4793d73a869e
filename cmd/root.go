package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/fitlog/internal/config"
	"github.com/misterclayt0n/fitlog/internal/generation"
	"github.com/misterclayt0n/fitlog/internal/logbook"
	"github.com/misterclayt0n/fitlog/internal/logging"
	"github.com/misterclayt0n/fitlog/internal/storage"
)

var (
	cfg      *config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:          "fitlog",
	Short:        "Log workouts and generate new ones from your training history",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}

		closer, err := logging.Setup(logging.Options{
			Level:  c.Log.Level,
			File:   c.Log.File,
			Mirror: c.Log.LogToStdout,
		})
		if err != nil {
			return err
		}

		cfg = c
		closeLog = closer
		return nil
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = closeLog() }()

	return rootCmd.ExecuteContext(ctx)
}

// openStorage connects to the configured database. The caller closes it.
func openStorage(ctx context.Context) (*storage.Storage, error) {
	return storage.Open(ctx, cfg.DB.ConnectionString)
}

func newService(st *storage.Storage) *logbook.Service {
	gen := generation.New(cfg.Generation.APIKey,
		generation.WithModel(cfg.Generation.Model),
		generation.WithBaseURL(cfg.Generation.BaseURL),
	)
	return logbook.NewService(st, gen)
}
