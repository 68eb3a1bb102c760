package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"snowstat/pkg/domain"

	"github.com/google/uuid"
)

const (
	snapshotsTable = "snapshots"
	incidentsTable = "incidents"
)

// PgSnapshot is the database representation of a domain.Snapshot. Components
// and maintenances are stored as JSONB documents since they are only ever read
// back whole.
type PgSnapshot struct {
	ID            uuid.UUID         `db:"id" goqu:"skipinsert"`
	Indicator     string            `db:"indicator"`
	Description   string            `db:"description"`
	PageUpdatedAt sql.NullTime      `db:"page_updated_at"`
	Components    json.RawMessage   `db:"components"`
	Maintenances  json.RawMessage   `db:"maintenances"`
	FetchedAt     time.Time         `db:"fetched_at"`
	CreatedAt     time.Time         `db:"created_at" goqu:"skipinsert"`
}

// ToDomain converts the database row into a domain.Snapshot.
func (s PgSnapshot) ToDomain() (domain.Snapshot, error) {
	var components []domain.Component
	if len(s.Components) > 0 {
		if err := json.Unmarshal(s.Components, &components); err != nil {
			return domain.Snapshot{}, fmt.Errorf("could not unmarshal components: %w", err)
		}
	}

	var maintenances []domain.Maintenance
	if len(s.Maintenances) > 0 {
		if err := json.Unmarshal(s.Maintenances, &maintenances); err != nil {
			return domain.Snapshot{}, fmt.Errorf("could not unmarshal maintenances: %w", err)
		}
	}

	var updatedAt time.Time
	if s.PageUpdatedAt.Valid {
		updatedAt = s.PageUpdatedAt.Time
	}

	return domain.Snapshot{
		ID: domain.SnapshotID(s.ID),
		Summary: domain.Summary{
			Indicator:   domain.Indicator(s.Indicator),
			Description: s.Description,
			UpdatedAt:   updatedAt,
		},
		Components:   components,
		Maintenances: maintenances,
		FetchedAt:    s.FetchedAt,
		CreatedAt:    s.CreatedAt,
	}, nil
}

// snapshotToPg converts a domain.Snapshot into its database representation.
func snapshotToPg(snapshot domain.Snapshot) (PgSnapshot, error) {
	components, err := json.Marshal(snapshot.Components)
	if err != nil {
		return PgSnapshot{}, fmt.Errorf("could not marshal components: %w", err)
	}

	maintenances, err := json.Marshal(snapshot.Maintenances)
	if err != nil {
		return PgSnapshot{}, fmt.Errorf("could not marshal maintenances: %w", err)
	}

	return PgSnapshot{
		Indicator:   string(snapshot.Summary.Indicator),
		Description: snapshot.Summary.Description,
		PageUpdatedAt: sql.NullTime{
			Time:  snapshot.Summary.UpdatedAt,
			Valid: !snapshot.Summary.UpdatedAt.IsZero(),
		},
		Components:   components,
		Maintenances: maintenances,
		FetchedAt:    snapshot.FetchedAt,
	}, nil
}

// PgIncident is the database representation of a domain.Incident. The update
// timeline is stored as a JSONB document keyed by the upstream incident ID.
type PgIncident struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	Status     string          `db:"status"`
	Impact     string          `db:"impact"`
	Shortlink  sql.NullString  `db:"shortlink"`
	Updates    json.RawMessage `db:"updates"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  sql.NullTime    `db:"updated_at"`
	ResolvedAt sql.NullTime    `db:"resolved_at"`
	StoredAt   time.Time       `db:"stored_at" goqu:"skipinsert,skipupdate"`
}

// ToDomain converts the database row into a domain.Incident.
func (i PgIncident) ToDomain() (domain.Incident, error) {
	var updates []domain.IncidentUpdate
	if len(i.Updates) > 0 {
		if err := json.Unmarshal(i.Updates, &updates); err != nil {
			return domain.Incident{}, fmt.Errorf("could not unmarshal incident updates: %w", err)
		}
	}

	incident := domain.Incident{
		ID:        i.ID,
		Name:      i.Name,
		Status:    i.Status,
		Impact:    i.Impact,
		Shortlink: i.Shortlink.String,
		Updates:   updates,
		CreatedAt: i.CreatedAt,
	}
	if i.UpdatedAt.Valid {
		incident.UpdatedAt = i.UpdatedAt.Time
	}
	if i.ResolvedAt.Valid {
		incident.ResolvedAt = i.ResolvedAt.Time
	}

	return incident, nil
}

// incidentToPg converts a domain.Incident into its database representation.
func incidentToPg(incident domain.Incident) (PgIncident, error) {
	updates, err := json.Marshal(incident.Updates)
	if err != nil {
		return PgIncident{}, fmt.Errorf("could not marshal incident updates: %w", err)
	}

	row := PgIncident{
		ID:     incident.ID,
		Name:   incident.Name,
		Status: incident.Status,
		Impact: incident.Impact,
		Shortlink: sql.NullString{
			String: incident.Shortlink,
			Valid:  incident.Shortlink != "",
		},
		Updates:   updates,
		CreatedAt: incident.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  incident.UpdatedAt,
			Valid: !incident.UpdatedAt.IsZero(),
		},
		ResolvedAt: sql.NullTime{
			Time:  incident.ResolvedAt,
			Valid: !incident.ResolvedAt.IsZero(),
		},
	}

	return row, nil
}
