// Package status is the core service behind the dashboard. It serves the
// freshest stored snapshot, falls back to a live fetch when the stored one has
// expired, and degrades to stale data when the upstream API is unreachable.
package status

import (
	"context"
	"fmt"
	"time"

	"snowstat/internal/config"
	"snowstat/internal/matrix"
	"snowstat/pkg/domain"
	"snowstat/pkg/logger"
	"snowstat/pkg/serrors"
	"snowstat/pkg/statuspage"
	"snowstat/pkg/storage"

	"go.uber.org/zap"
)

// Options configure snapshot freshness and incident reporting. These settings
// are typically derived from application configuration.
type Options struct {
	// CacheTTL is how long a stored snapshot is considered fresh. Requests
	// arriving after the TTL trigger a live fetch.
	CacheTTL time.Duration
	// IncidentWindow is how far back resolved incidents are included in
	// incident listings. Unresolved incidents are always included.
	IncidentWindow time.Duration
	// CanonicalServices fixes the service ordering inside the matrix. Services
	// not listed are appended alphabetically.
	CanonicalServices []string
}

// NewOptions constructs an Options value from the provided application config.
// The canonical service list is loaded from the configured file, if any.
func NewOptions(ctx context.Context, cfg *config.Config) Options {
	return Options{
		CacheTTL:          cfg.Statuspage.CacheTTL,
		IncidentWindow:    cfg.Statuspage.IncidentWindow,
		CanonicalServices: matrix.LoadCanonicalServices(ctx, cfg.Matrix.ServicesFile),
	}
}

// status is the concrete implementation of the Status interface. It coordinates
// the upstream API client with the storage layer.
type status struct {
	// options holds runtime configuration that affects freshness and windows.
	options Options
	// storage is the persistence layer for snapshots and incident history.
	storage storage.Storage
	// client talks to the upstream status page API.
	client statuspage.Client
	// now is the clock; a field so tests can pin it.
	now func() time.Time
}

// Overview returns the current snapshot. A stored snapshot younger than
// CacheTTL is served as-is. Otherwise a live fetch is attempted; if that fails
// but a stored snapshot exists, the stale snapshot is returned with the Stale
// flag set instead of an error.
func (s *status) Overview(ctx context.Context) (*Overview, error) {
	latest, err := s.storage.LatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load latest snapshot: %w", err)
	}

	if latest != nil && latest.Age(s.now()) <= s.options.CacheTTL {
		return &Overview{Snapshot: *latest}, nil
	}

	fresh, err := s.Refresh(ctx)
	if err != nil {
		if latest == nil {
			return nil, fmt.Errorf("could not refresh status: %w", err)
		}

		// upstream unreachable, serve what we have
		logger.Warn(ctx, "serving stale snapshot, refresh failed", zap.Error(err))

		return &Overview{Snapshot: *latest, Stale: true}, nil
	}

	return &Overview{Snapshot: *fresh}, nil
}

// Matrix builds the cloud/region/service grid from the current snapshot and
// returns the overview alongside it.
func (s *status) Matrix(ctx context.Context) (matrix.Matrix, *Overview, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return matrix.Matrix{}, nil, err
	}

	return matrix.Build(overview.Snapshot.Components, s.options.CanonicalServices), overview, nil
}

// Incidents returns the stored incident history: everything inside the
// incident window plus unresolved incidents of any age, newest first.
func (s *status) Incidents(ctx context.Context, limit uint) ([]domain.Incident, error) {
	since := s.now().Add(-s.options.IncidentWindow)
	incidents, err := s.storage.Incidents(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("could not load incidents: %w", err)
	}

	return incidents, nil
}

// ActiveMaintenances returns maintenance windows currently in progress.
func (s *status) ActiveMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	maintenances, err := s.client.ActiveMaintenances(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active maintenances: %w", err)
	}

	return maintenances, nil
}

// UpcomingMaintenances returns maintenance windows scheduled for the future.
func (s *status) UpcomingMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	maintenances, err := s.client.UpcomingMaintenances(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch upcoming maintenances: %w", err)
	}

	return maintenances, nil
}

// History returns a page of stored snapshots. It supports cursor-based
// pagination using an RFC3339 timestamp string and returns the next cursor
// when more results are available.
func (s *status) History(ctx context.Context, cursor string, limit uint) ([]domain.Snapshot, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.Snapshots(ctx, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not load snapshot history: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Snapshots, next, nil
}

// Refresh fetches the page summary, components, incidents and active
// maintenance windows from the upstream API, stores them atomically and
// returns the stored snapshot.
func (s *status) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	summary, err := s.client.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch summary: %w", err)
	}

	components, err := s.client.Components(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch components: %w", err)
	}

	incidents, err := s.client.Incidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch incidents: %w", err)
	}

	maintenances, err := s.client.ActiveMaintenances(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch active maintenances: %w", err)
	}

	snapshot := domain.Snapshot{
		Summary:      *summary,
		Components:   components,
		Maintenances: maintenances,
		FetchedAt:    s.now(),
	}

	var stored *domain.Snapshot
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreSnapshot(ctx, snapshot)
		if err != nil {
			return fmt.Errorf("could not store snapshot: %w", err)
		}

		if err := tx.UpsertIncidents(ctx, incidents...); err != nil {
			return fmt.Errorf("could not upsert incidents: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not persist refresh: %w", err)
	}

	return stored, nil
}

// New creates a new Status service backed by the provided storage and upstream
// client, configured with the given options.
func New(strg storage.Storage, client statuspage.Client, options Options) Status {
	return &status{
		options: options,
		storage: strg,
		client:  client,
		now:     time.Now,
	}
}
