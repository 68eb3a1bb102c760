package status_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"snowstat/internal/status"
	"snowstat/pkg/domain"
	"snowstat/pkg/logger"
	"snowstat/pkg/serrors"
	"snowstat/pkg/storage"
	mockstorage "snowstat/pkg/storage/mock"
	mockstatuspage "snowstat/pkg/statuspage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (status.Status, *mockstorage.MockStorage, *mockstatuspage.MockClient) {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	client := mockstatuspage.NewMockClient(ctrl)

	svc := status.New(strg, client, status.Options{
		CacheTTL:       time.Minute,
		IncidentWindow: 30 * 24 * time.Hour,
	})

	return svc, strg, client
}

func storedSnapshot(fetchedAt time.Time) *domain.Snapshot {
	return &domain.Snapshot{
		Summary: domain.Summary{
			Indicator:   domain.IndicatorNone,
			Description: "All Systems Operational",
		},
		Components: []domain.Component{
			{ID: "svc-db", Name: "Database", Status: domain.StatusOperational, GroupID: "grp-aws-use1"},
			{
				ID: "grp-aws-use1", Name: "AWS - US East (Northern Virginia)",
				Status: domain.StatusOperational, Group: true,
				ComponentIDs: []domain.ComponentID{"svc-db"},
			},
		},
		FetchedAt: fetchedAt,
		CreatedAt: fetchedAt,
	}
}

func expectRefresh(t *testing.T,
	strg *mockstorage.MockStorage,
	client *mockstatuspage.MockClient,
	stored *domain.Snapshot) {
	t.Helper()

	client.EXPECT().Summary(gomock.Any()).Return(&stored.Summary, nil)
	client.EXPECT().Components(gomock.Any()).Return(stored.Components, nil)
	client.EXPECT().Incidents(gomock.Any()).Return([]domain.Incident{{ID: "inc-1"}}, nil)
	client.EXPECT().ActiveMaintenances(gomock.Any()).Return(nil, nil)

	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(gomock.NewController(t))
			tx.EXPECT().StoreSnapshot(gomock.Any(), gomock.Any()).Return(stored, nil)
			tx.EXPECT().UpsertIncidents(gomock.Any(), gomock.Any()).Return(nil)

			return cb(tx)
		})
}

func TestOverview_ServesFreshStoredSnapshot(t *testing.T) {
	svc, strg, _ := newService(t)

	snap := storedSnapshot(time.Now())
	strg.EXPECT().LatestSnapshot(gomock.Any()).Return(snap, nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.False(t, overview.Stale)
	require.Equal(t, snap.Summary, overview.Snapshot.Summary)
}

func TestOverview_ExpiredSnapshotTriggersRefresh(t *testing.T) {
	svc, strg, client := newService(t)

	old := storedSnapshot(time.Now().Add(-time.Hour))
	fresh := storedSnapshot(time.Now())
	strg.EXPECT().LatestSnapshot(gomock.Any()).Return(old, nil)
	expectRefresh(t, strg, client, fresh)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.False(t, overview.Stale)
	require.WithinDuration(t, fresh.FetchedAt, overview.Snapshot.FetchedAt, time.Second)
}

func TestOverview_DegradesToStaleOnRefreshFailure(t *testing.T) {
	svc, strg, client := newService(t)

	old := storedSnapshot(time.Now().Add(-time.Hour))
	strg.EXPECT().LatestSnapshot(gomock.Any()).Return(old, nil)
	client.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("upstream down"))

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.True(t, overview.Stale)
	require.Equal(t, old.Summary, overview.Snapshot.Summary)
}

func TestOverview_ErrorsWithoutAnySnapshot(t *testing.T) {
	svc, strg, client := newService(t)

	strg.EXPECT().LatestSnapshot(gomock.Any()).Return(nil, nil)
	client.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("upstream down"))

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}

func TestRefresh_StoresSnapshotAndIncidents(t *testing.T) {
	svc, strg, client := newService(t)

	stored := storedSnapshot(time.Now())
	expectRefresh(t, strg, client, stored)

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, stored.Summary, snap.Summary)
}

func TestMatrix_BuildsGridFromOverview(t *testing.T) {
	svc, strg, _ := newService(t)

	snap := storedSnapshot(time.Now())
	strg.EXPECT().LatestSnapshot(gomock.Any()).Return(snap, nil)

	m, overview, err := svc.Matrix(context.Background())
	require.NoError(t, err)
	require.NotNil(t, overview)
	require.Len(t, m.Clouds, 1)
	require.Equal(t, "AWS", m.Clouds[0].Name)
	require.Len(t, m.Clouds[0].Regions, 1)
	require.Equal(t, "US East (Northern Virginia)", m.Clouds[0].Regions[0].Name)
}

func TestIncidents_UsesWindow(t *testing.T) {
	svc, strg, _ := newService(t)

	strg.EXPECT().Incidents(gomock.Any(), gomock.Any(), uint(10)).
		DoAndReturn(func(_ context.Context, since time.Time, _ uint) ([]domain.Incident, error) {
			require.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)

			return []domain.Incident{{ID: "inc-1"}}, nil
		})

	incidents, err := svc.Incidents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
}

func TestHistory_CursorHandling(t *testing.T) {
	svc, strg, _ := newService(t)

	// invalid cursor
	_, _, err := svc.History(context.Background(), "not-a-time", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	// valid cursor with next page
	next := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	strg.EXPECT().Snapshots(gomock.Any(), gomock.Any(), uint(2)).Return(storage.SnapshotPage{
		Snapshots:  []domain.Snapshot{*storedSnapshot(time.Now())},
		NextCursor: &next,
	}, nil)

	snaps, cursor, err := svc.History(context.Background(), "2026-08-02T00:00:00Z", 2)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	require.Equal(t, next.Format(time.RFC3339), cursor)
}

func TestMaintenances_PassThrough(t *testing.T) {
	svc, _, client := newService(t)

	client.EXPECT().ActiveMaintenances(gomock.Any()).Return([]domain.Maintenance{{ID: "m1"}}, nil)
	client.EXPECT().UpcomingMaintenances(gomock.Any()).Return([]domain.Maintenance{{ID: "m2"}}, nil)

	active, err := svc.ActiveMaintenances(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)

	upcoming, err := svc.UpcomingMaintenances(context.Background())
	require.NoError(t, err)
	require.Equal(t, "m2", upcoming[0].ID)
}
