package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fitstack/trainings-api/internal/config"
	"github.com/fitstack/trainings-api/internal/handler"
	"github.com/fitstack/trainings-api/internal/logger"
	"github.com/fitstack/trainings-api/internal/middleware"
	"github.com/fitstack/trainings-api/internal/repository"
	"github.com/fitstack/trainings-api/internal/router"
	"github.com/fitstack/trainings-api/internal/server"
	"github.com/fitstack/trainings-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPI()
	},
}

func runAPI() error {
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
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, repos, services)
	middlewares := middleware.NewMiddlewares(s)

	s.SetupHTTPServer(router.New(handlers, middlewares))

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server error")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}

	log.Info().Msg("server stopped")
	return nil
}
