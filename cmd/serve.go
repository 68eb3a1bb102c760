package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"snowstat/internal/api"
	"snowstat/internal/api/handler/v1handler"
	"snowstat/internal/config"
	"snowstat/internal/status"
	"snowstat/internal/worker"
	"snowstat/pkg/logger"
	"snowstat/pkg/statuspage/statuspageio"
	"snowstat/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, st status.Status) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Status: st,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupStatus builds the status service from the storage layer and the
// upstream API client.
func setupStatus(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) status.Status {
	client := statuspageio.New(&http.Client{Timeout: cfg.Statuspage.Timeout}, cfg.Statuspage.BaseURL)

	return status.New(strg, client, status.NewOptions(ctx, cfg))
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background poller",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			st := setupStatus(ctx, cfg, strg)

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, st, strg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, st)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
