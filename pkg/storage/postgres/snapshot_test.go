package postgres_test

import (
	"context"
	"testing"
	"time"

	"snowstat/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(fetchedAt time.Time) domain.Snapshot {
	return domain.Snapshot{
		Summary: domain.Summary{
			Indicator:   domain.IndicatorMinor,
			Description: "Partially Degraded Service",
			UpdatedAt:   fetchedAt,
		},
		Components: []domain.Component{
			{
				ID:     "comp-db",
				Name:   "Database",
				Status: domain.StatusDegradedPerformance,
				Group:  false,
			},
			{
				ID:           "grp-aws-us-east-1",
				Name:         "AWS - US East (Northern Virginia)",
				Status:       domain.StatusOperational,
				Group:        true,
				ComponentIDs: []domain.ComponentID{"comp-db"},
			},
		},
		Maintenances: []domain.Maintenance{
			{
				ID:     "maint-1",
				Name:   "Scheduled upgrade",
				Status: "scheduled",
			},
		},
		FetchedAt: fetchedAt,
	}
}

func TestPgSQL_StoreSnapshot_RoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fetched := time.Now().UTC().Truncate(time.Millisecond)

	stored, err := pg.StoreSnapshot(ctx, sampleSnapshot(fetched))
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, domain.IndicatorMinor, stored.Summary.Indicator)
	require.Equal(t, "Partially Degraded Service", stored.Summary.Description)
	require.Len(t, stored.Components, 2)
	require.Len(t, stored.Maintenances, 1)
	require.WithinDuration(t, fetched, stored.FetchedAt, time.Millisecond)

	// group membership survives the JSONB round trip
	require.True(t, stored.Components[1].Group)
	require.Equal(t, []domain.ComponentID{"comp-db"}, stored.Components[1].ComponentIDs)
}

func TestPgSQL_LatestSnapshot(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// empty table
	latest, err := pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.Nil(t, latest)

	now := time.Now().UTC().Truncate(time.Millisecond)
	older := sampleSnapshot(now.Add(-10 * time.Minute))
	newer := sampleSnapshot(now)
	newer.Summary.Description = "newest"

	_, err = pg.StoreSnapshot(ctx, older)
	require.NoError(t, err)
	_, err = pg.StoreSnapshot(ctx, newer)
	require.NoError(t, err)

	latest, err = pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "newest", latest.Summary.Description)
	require.WithinDuration(t, now, latest.FetchedAt, time.Millisecond)
}

func TestPgSQL_Snapshots_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	ids := make([]domain.SnapshotID, 0, 5)
	for i := range 5 {
		stored, err := pg.StoreSnapshot(ctx, sampleSnapshot(now.Add(time.Duration(-i)*time.Minute)))
		require.NoError(t, err)
		ids = append(ids, stored.ID)

		// spread created_at so cursor pagination has distinct values
		_, err = pg.DB.ExecContext(ctx,
			"UPDATE snapshots SET created_at = $1 WHERE id = $2",
			now.Add(time.Duration(-i)*time.Minute), uuid.UUID(stored.ID))
		require.NoError(t, err)
	}

	// first page
	page, err := pg.Snapshots(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Snapshots, 2)
	require.NotNil(t, page.NextCursor)
	require.Equal(t, ids[0], page.Snapshots[0].ID)
	require.Equal(t, ids[1], page.Snapshots[1].ID)

	// second page via cursor
	page2, err := pg.Snapshots(ctx, *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Snapshots, 2)
	require.Equal(t, ids[2], page2.Snapshots[0].ID)
	require.Equal(t, ids[3], page2.Snapshots[1].ID)
	require.NotNil(t, page2.NextCursor)

	// final page has no next cursor
	page3, err := pg.Snapshots(ctx, *page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Snapshots, 1)
	require.Nil(t, page3.NextCursor)
}

func TestPgSQL_Snapshots_ZeroLimitReturnsAll(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	for i := range 3 {
		_, err := pg.StoreSnapshot(ctx, sampleSnapshot(now.Add(time.Duration(-i)*time.Minute)))
		require.NoError(t, err)
	}

	page, err := pg.Snapshots(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, page.Snapshots, 3)
	require.Nil(t, page.NextCursor)
}

func TestPgSQL_PruneSnapshots(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	_, err := pg.StoreSnapshot(ctx, sampleSnapshot(now.Add(-48*time.Hour)))
	require.NoError(t, err)
	_, err = pg.StoreSnapshot(ctx, sampleSnapshot(now.Add(-36*time.Hour)))
	require.NoError(t, err)
	kept, err := pg.StoreSnapshot(ctx, sampleSnapshot(now))
	require.NoError(t, err)

	deleted, err := pg.PruneSnapshots(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	latest, err := pg.LatestSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, kept.ID, latest.ID)

	// nothing more to prune
	deleted, err = pg.PruneSnapshots(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Zero(t, deleted)
}
