package status

import (
	"context"

	"snowstat/internal/matrix"
	"snowstat/pkg/domain"
)

// Overview couples the current snapshot with a staleness marker. Stale is set
// when the snapshot is older than the cache TTL but a fresh fetch failed, so
// callers can degrade gracefully instead of erroring out.
type Overview struct {
	Snapshot domain.Snapshot
	Stale    bool
}

//go:generate mockgen -package mockstatus -source=interface.go -destination=mock/mockstatus.go *
type Status interface {
	Overview(ctx context.Context) (*Overview, error)
	Matrix(ctx context.Context) (matrix.Matrix, *Overview, error)
	Incidents(ctx context.Context, limit uint) ([]domain.Incident, error)
	ActiveMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	UpcomingMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	History(ctx context.Context, cursor string, limit uint) ([]domain.Snapshot, string, error)
	Refresh(ctx context.Context) (*domain.Snapshot, error)
}
