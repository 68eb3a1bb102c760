package postgres

import (
	"context"
	"fmt"
	"time"

	"snowstat/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

// UpsertIncidents inserts incidents keyed by their upstream ID, replacing the
// mutable fields on conflict. The stored_at column keeps its original value so
// it records when the incident was first seen locally.
func (p *PgSQL) UpsertIncidents(ctx context.Context, incidents ...domain.Incident) error {
	if len(incidents) == 0 {
		return nil
	}

	rows := make([]PgIncident, 0, len(incidents))
	for _, incident := range incidents {
		row, err := incidentToPg(incident)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if _, err := p.Builder.Insert(incidentsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":        goqu.I("excluded.name"),
			"status":      goqu.I("excluded.status"),
			"impact":      goqu.I("excluded.impact"),
			"shortlink":   goqu.I("excluded.shortlink"),
			"updates":     goqu.I("excluded.updates"),
			"updated_at":  goqu.I("excluded.updated_at"),
			"resolved_at": goqu.I("excluded.resolved_at"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert incidents into pg: %w", err)
	}

	return nil
}

// Incidents returns incidents created at or after since, plus unresolved
// incidents of any age, ordered newest first. A limit of 0 means no limit.
func (p *PgSQL) Incidents(ctx context.Context, since time.Time, limit uint) ([]domain.Incident, error) {
	ds := p.Builder.From(incidentsTable).
		Where(goqu.Or(
			goqu.I("created_at").Gte(since),
			goqu.I("resolved_at").IsNull(),
		)).
		Order(goqu.I("created_at").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgIncident
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch incidents from pg: %w", err)
	}

	incidents := make([]domain.Incident, 0, len(rows))
	for _, row := range rows {
		incident, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}

	return incidents, nil
}
