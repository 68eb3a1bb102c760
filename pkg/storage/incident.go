package storage

import (
	"context"
	"time"

	"snowstat/pkg/domain"
)

// IncidentStorage defines persistence for incident history. Incidents are
// keyed by their upstream ID and updated in place as the upstream page posts
// new timeline entries.
type IncidentStorage interface {
	// UpsertIncidents inserts new incidents or updates existing rows by
	// upstream ID. The payload, status and resolution timestamp are replaced
	// on conflict.
	UpsertIncidents(ctx context.Context, incidents ...domain.Incident) error
	// Incidents returns incidents created at or after since, plus any
	// unresolved incidents regardless of age, ordered newest first and
	// limited by limit (0 means no limit).
	Incidents(ctx context.Context, since time.Time, limit uint) ([]domain.Incident, error)
}
