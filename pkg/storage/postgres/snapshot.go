package postgres

import (
	"context"
	"fmt"
	"time"

	"snowstat/pkg/domain"
	"snowstat/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// StoreSnapshot inserts a new snapshot row and returns it with the generated
// ID and created_at populated.
func (p *PgSQL) StoreSnapshot(ctx context.Context, snapshot domain.Snapshot) (*domain.Snapshot, error) {
	row, err := snapshotToPg(snapshot)
	if err != nil {
		return nil, err
	}

	var stored PgSnapshot
	found, err := p.Builder.Insert(snapshotsTable).
		Rows(row).
		Returning(&PgSnapshot{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store snapshot into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store snapshot into pg: no row returned")
	}

	result, err := stored.ToDomain()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// LatestSnapshot returns the most recently fetched snapshot, or nil when the
// table is empty.
func (p *PgSQL) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var row PgSnapshot
	found, err := p.Builder.From(snapshotsTable).
		Order(goqu.I("fetched_at").Desc(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest snapshot from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	result, err := row.ToDomain()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Snapshots returns a page of snapshots filtered by an optional cursor and
// limited by limit. A zero limit returns all matching rows. Results are
// ordered by created_at DESC, id DESC.
func (p *PgSQL) Snapshots(ctx context.Context, cursor time.Time, limit uint) (storage.SnapshotPage, error) {
	var w []goqu.Expression
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	ds := p.Builder.From(snapshotsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if limit > 0 {
		// fetch one extra to determine if there is a next page
		ds = ds.Limit(limit + 1)
	}

	var rows []PgSnapshot
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SnapshotPage{}, fmt.Errorf("could not fetch snapshots from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if limit > 0 && uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	snapshots := make([]domain.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshot, err := row.ToDomain()
		if err != nil {
			return storage.SnapshotPage{}, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return storage.SnapshotPage{
		Snapshots:  snapshots,
		NextCursor: nextCursor,
	}, nil
}

// PruneSnapshots deletes snapshots fetched before the given time and returns
// the number of deleted rows.
func (p *PgSQL) PruneSnapshots(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(snapshotsTable).
		Where(goqu.I("fetched_at").Lt(before)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune snapshots in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read pruned row count: %w", err)
	}

	return deleted, nil
}
