package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/lib/telegram"
	"github.com/fitstack/trainings-api/internal/logger"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/server"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the queue worker and scheduler",
	Long: "Consumes payment status updates and welcome emails from the queue " +
		"and runs the scheduled membership-expiry and report jobs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker()
	},
}

func runWorker() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return errors.Wrap(err, "initializing logger service")
	}
	defer loggerService.Shutdown(10 * time.Second)

	log := logger.New(cfg.Observability, loggerService)

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return errors.Wrap(err, "initializing server")
	}

	repos := repository.NewRepositories(s)
	s.Job.InitHandlers(cfg, log, repos.Payments, repos.Clients, repos.Users, repos.Reports)

	if err := s.Job.Start(); err != nil {
		return errors.Wrap(err, "starting job service")
	}

	botCtx, stopBot := context.WithCancel(context.Background())
	defer stopBot()
	if cfg.Auth.TwoFactorEnabled && cfg.Auth.BotToken != "" {
		bot, err := telegram.NewBot(cfg.Auth, telegram.NewLoginStore(s.Redis), s.TokenService, log)
		if err != nil {
			return errors.Wrap(err, "starting telegram bot")
		}
		go bot.Run(botCtx)
	}

	log.Info().Msg("worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}

	log.Info().Msg("worker stopped")
	return nil
}
