package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"snowstat/internal/status"
	"snowstat/pkg/logger"
	"snowstat/pkg/metrics"
	"snowstat/pkg/serrors"
	"snowstat/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// defaultSnooze backs a rate-limited poll off when no poll interval is
// configured. Statuspage does not expose reset headers on the public
// endpoints, so the poll interval doubles as the backoff.
const defaultSnooze = time.Minute

// PollWorker is a River worker that refreshes the status snapshot from the
// upstream page. Each run fetches the summary, components, incidents and
// maintenance windows, stores them, and prunes snapshots past the retention
// window. Rate-limited runs are snoozed instead of burned as retries.
type PollWorker struct {
	river.WorkerDefaults[status.PollArgs]

	// status performs the actual refresh against the upstream API.
	status status.Status
	// storage is used for retention pruning after a successful poll.
	storage storage.Storage
	// retention is how long snapshots are kept. Zero disables pruning.
	retention time.Duration
	// snooze is how long a rate-limited job sleeps, normally the poll
	// interval.
	snooze time.Duration
}

// NewPollWorker constructs a PollWorker. retention controls how far back
// snapshots are kept; pass zero to keep everything. interval is the poll
// interval, used as the snooze duration when the upstream rate limits.
func NewPollWorker(st status.Status, strg storage.Storage, retention, interval time.Duration) *PollWorker {
	if interval <= 0 {
		interval = defaultSnooze
	}

	return &PollWorker{
		status:    st,
		storage:   strg,
		retention: retention,
		snooze:    interval,
	}
}

// Work executes a single poll job. It refreshes the snapshot, records metrics,
// maps upstream rate limiting to a snooze, and prunes expired snapshots.
func (w *PollWorker) Work(ctx context.Context, job *river.Job[status.PollArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	started := time.Now()
	snapshot, err := w.status.Refresh(ctx)
	metrics.PollDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			metrics.PollsTotal.WithLabelValues(metrics.PollOutcomeRateLimited).Inc()
			logger.Warn(ctx, "upstream rate limited, snoozing poll", zap.Error(err))

			return river.JobSnooze(w.snooze) //nolint: wrapcheck
		}

		metrics.PollsTotal.WithLabelValues(metrics.PollOutcomeFailure).Inc()
		logger.Error(ctx, "error refreshing status snapshot", zap.Error(err))

		return fmt.Errorf("could not refresh status snapshot: %w", err)
	}

	metrics.PollsTotal.WithLabelValues(metrics.PollOutcomeSuccess).Inc()
	metrics.SnapshotAge.Set(snapshot.Age(time.Now()).Seconds())

	if w.retention > 0 {
		pruned, err := w.storage.PruneSnapshots(ctx, time.Now().Add(-w.retention))
		if err != nil {
			// the snapshot itself landed, so log and keep the job successful
			logger.Error(ctx, "error pruning snapshots", zap.Error(err))
		} else if pruned > 0 {
			logger.Debug(ctx, "pruned expired snapshots", zap.Int64("count", pruned))
		}
	}

	logger.Info(ctx, "status snapshot refreshed",
		zap.String("indicator", string(snapshot.Summary.Indicator)),
		zap.Int("components", len(snapshot.Components)))

	return nil
}
