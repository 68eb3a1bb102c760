package storage

import (
	"context"
	"time"

	"snowstat/pkg/domain"
)

// SnapshotPage groups a page of snapshots together with an optional
// NextCursor used for pagination.
type SnapshotPage struct {
	// Snapshots contains the current page, newest first.
	Snapshots []domain.Snapshot
	// NextCursor is the created_at value to use as the cursor for the next
	// page. Nil when there is no next page.
	NextCursor *time.Time
}

// SnapshotStorage defines persistence for status snapshots. Snapshots are
// immutable; there are no update operations.
type SnapshotStorage interface {
	// StoreSnapshot inserts a snapshot and returns the stored row including
	// generated fields.
	StoreSnapshot(ctx context.Context, snapshot domain.Snapshot) (*domain.Snapshot, error)
	// LatestSnapshot returns the most recently fetched snapshot, or nil when
	// none has been stored yet.
	LatestSnapshot(ctx context.Context) (*domain.Snapshot, error)
	// Snapshots returns a page of snapshots created before the optional cursor
	// time, ordered by created_at descending and limited by limit. A zero
	// limit returns everything with no next cursor.
	Snapshots(ctx context.Context, cursor time.Time, limit uint) (SnapshotPage, error)
	// PruneSnapshots deletes snapshots fetched before the given time and
	// returns the number of rows removed.
	PruneSnapshots(ctx context.Context, before time.Time) (int64, error)
}
