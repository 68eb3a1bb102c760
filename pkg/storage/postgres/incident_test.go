package postgres_test

import (
	"context"
	"testing"
	"time"

	"snowstat/pkg/domain"

	"github.com/stretchr/testify/require"
)

func sampleIncident(id string, createdAt time.Time, resolvedAt time.Time) domain.Incident {
	incident := domain.Incident{
		ID:        id,
		Name:      "Elevated query latency",
		Status:    "investigating",
		Impact:    "minor",
		Shortlink: "https://stspg.io/" + id,
		Updates: []domain.IncidentUpdate{
			{
				ID:        id + "-u1",
				Status:    "investigating",
				Body:      "We are investigating elevated query latency.",
				CreatedAt: createdAt,
				DisplayAt: createdAt,
			},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if !resolvedAt.IsZero() {
		incident.Status = "resolved"
		incident.ResolvedAt = resolvedAt
		incident.UpdatedAt = resolvedAt
	}

	return incident
}

func TestPgSQL_UpsertIncidents_InsertAndUpdate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := sampleIncident("inc-1", now.Add(-2*time.Hour), time.Time{})
	require.NoError(t, pg.UpsertIncidents(ctx, first))

	got, err := pg.Incidents(ctx, now.Add(-24*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "investigating", got[0].Status)
	require.True(t, got[0].ResolvedAt.IsZero())
	require.Len(t, got[0].Updates, 1)

	// the incident resolves upstream; the same ID carries new state
	resolved := sampleIncident("inc-1", now.Add(-2*time.Hour), now)
	resolved.Updates = append([]domain.IncidentUpdate{
		{
			ID:        "inc-1-u2",
			Status:    "resolved",
			Body:      "Latency is back to normal.",
			CreatedAt: now,
			DisplayAt: now,
		},
	}, resolved.Updates...)
	require.NoError(t, pg.UpsertIncidents(ctx, resolved))

	got, err = pg.Incidents(ctx, now.Add(-24*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, got, 1, "upsert must not duplicate the row")
	require.Equal(t, "resolved", got[0].Status)
	require.WithinDuration(t, now, got[0].ResolvedAt, time.Millisecond)
	require.Len(t, got[0].Updates, 2)
}

func TestPgSQL_Incidents_WindowAndUnresolved(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	recent := sampleIncident("inc-recent", now.Add(-24*time.Hour), now.Add(-23*time.Hour))
	oldResolved := sampleIncident("inc-old-resolved", now.Add(-60*24*time.Hour), now.Add(-59*24*time.Hour))
	oldOngoing := sampleIncident("inc-old-ongoing", now.Add(-45*24*time.Hour), time.Time{})

	require.NoError(t, pg.UpsertIncidents(ctx, recent, oldResolved, oldOngoing))

	// 30 day window: recent is inside, old resolved drops out, old ongoing
	// stays because it is unresolved
	got, err := pg.Incidents(ctx, now.Add(-30*24*time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// ordered newest first
	require.Equal(t, "inc-recent", got[0].ID)
	require.Equal(t, "inc-old-ongoing", got[1].ID)
}

func TestPgSQL_Incidents_Limit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i, id := range []string{"inc-a", "inc-b", "inc-c"} {
		incident := sampleIncident(id, now.Add(time.Duration(-i)*time.Hour), time.Time{})
		require.NoError(t, pg.UpsertIncidents(ctx, incident))
	}

	got, err := pg.Incidents(ctx, now.Add(-24*time.Hour), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "inc-a", got[0].ID)
	require.Equal(t, "inc-b", got[1].ID)
}

func TestPgSQL_UpsertIncidents_Empty(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, pg.UpsertIncidents(context.Background()))
}
