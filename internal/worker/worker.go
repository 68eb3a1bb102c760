// Package worker wires the background job runtime. It registers the poll
// worker with River and schedules the periodic poll that keeps the stored
// snapshot fresh without any dashboard traffic.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"snowstat/internal/config"
	"snowstat/internal/status"
	"snowstat/pkg/logger"
	"snowstat/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Start registers the poll worker, schedules the periodic poll at the
// configured interval and starts the River client.
func Start(ctx context.Context,
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	st status.Status,
	strg storage.Storage) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPollWorker(st, strg, cfg.Poller.SnapshotRetention, cfg.Poller.Interval))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: cfg.Poller.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Poller.Interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return status.NewPollArgs(cfg.Poller.MaxAttempts, cfg.Poller.Interval), nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
