package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/database"
	"github.com/fitstack/trainings-api/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	log := logger.New(cfg.Observability, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return errors.Wrap(err, "running migrations")
	}

	log.Info().Msg("migrations applied")
	return nil
}
