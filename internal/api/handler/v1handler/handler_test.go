package v1handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"snowstat/internal/api/handler/v1handler"
	"snowstat/internal/matrix"
	"snowstat/internal/status"
	mockstatus "snowstat/internal/status/mock"
	"snowstat/pkg/domain"
	"snowstat/pkg/logger"
	"snowstat/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newHandler(t *testing.T) (*http.ServeMux, *mockstatus.MockStatus) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstatus.NewMockStatus(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Status: st}).Register(mux)

	return mux, st
}

func doRequest(t *testing.T, mux *http.ServeMux, target string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	return res, rec.Body.Bytes()
}

func testOverview(stale bool) *status.Overview {
	return &status.Overview{
		Snapshot: domain.Snapshot{
			Summary: domain.Summary{
				Indicator:   domain.IndicatorMinor,
				Description: "Partially Degraded Service",
				UpdatedAt:   time.Now(),
			},
			Components: []domain.Component{
				{ID: "svc-db", Name: "Database", Status: domain.StatusDegradedPerformance, GroupID: "grp"},
				{ID: "grp", Name: "AWS - US East (Northern Virginia)", Status: domain.StatusOperational,
					Group: true, ComponentIDs: []domain.ComponentID{"svc-db"}},
			},
			FetchedAt: time.Now(),
		},
		Stale: stale,
	}
}

func TestGetStatus(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Overview(gomock.Any()).Return(testOverview(false), nil)

	res, body := doRequest(t, mux, "/v1/status")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var parsed v1handler.StatusResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Equal(t, "minor", parsed.Indicator)
	require.Equal(t, "Partially Degraded Service", parsed.Description)
	require.False(t, parsed.Stale)
	require.Equal(t, 1, parsed.Counts["degraded_performance"])
}

func TestGetStatus_StaleFlagPropagates(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Overview(gomock.Any()).Return(testOverview(true), nil)

	res, body := doRequest(t, mux, "/v1/status")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.StatusResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.True(t, parsed.Stale)
}

func TestGetStatus_InternalError(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Overview(gomock.Any()).Return(nil, errors.New("db down"))

	res, body := doRequest(t, mux, "/v1/status")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Contains(t, string(body), "internal server error")
	require.NotContains(t, string(body), "db down")
}

func TestGetMatrix(t *testing.T) {
	mux, st := newHandler(t)

	overview := testOverview(false)
	m := matrix.Build(overview.Snapshot.Components, nil)
	st.EXPECT().Matrix(gomock.Any()).Return(m, overview, nil)

	res, body := doRequest(t, mux, "/v1/matrix")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.MatrixResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Clouds, 1)
	require.Equal(t, "AWS", parsed.Clouds[0].Name)
	require.Equal(t, "degraded_performance", parsed.Clouds[0].Worst)
	require.Len(t, parsed.Clouds[0].Regions, 1)
	require.Equal(t, "Degraded Performance", parsed.Clouds[0].Regions[0].Services[0].Label)
}

func TestGetComponents(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Overview(gomock.Any()).Return(testOverview(false), nil)

	res, body := doRequest(t, mux, "/v1/components")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.ComponentsResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Components, 2)
}

func TestGetIncidents(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Incidents(gomock.Any(), uint(v1handler.DefaultLimit)).
		Return([]domain.Incident{{ID: "inc-1", Name: "Login failures"}}, nil)

	res, body := doRequest(t, mux, "/v1/incidents")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.IncidentsResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Incidents, 1)
	require.Equal(t, "inc-1", parsed.Incidents[0].ID)
}

func TestGetIncidents_LimitValidation(t *testing.T) {
	mux, st := newHandler(t)

	// invalid limit never reaches the service
	res, _ := doRequest(t, mux, "/v1/incidents?limit=abc")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = doRequest(t, mux, "/v1/incidents?limit=0")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	// oversized limit gets capped
	st.EXPECT().Incidents(gomock.Any(), uint(v1handler.MaxLimit)).Return(nil, nil)
	res, body := doRequest(t, mux, "/v1/incidents?limit=1000")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.IncidentsResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.NotNil(t, parsed.Incidents)
	require.Empty(t, parsed.Incidents)
}

func TestGetMaintenances(t *testing.T) {
	mux, st := newHandler(t)

	st.EXPECT().ActiveMaintenances(gomock.Any()).
		Return([]domain.Maintenance{{ID: "m1", Status: "in_progress"}}, nil)
	res, body := doRequest(t, mux, "/v1/maintenances/active")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.MaintenancesResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Maintenances, 1)

	st.EXPECT().UpcomingMaintenances(gomock.Any()).Return(nil, nil)
	res, body = doRequest(t, mux, "/v1/maintenances/upcoming")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Empty(t, parsed.Maintenances)
}

func TestGetStatus_UpstreamUnavailable(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().Overview(gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "upstream unavailable"))

	res, body := doRequest(t, mux, "/v1/status")
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Contains(t, string(body), "upstream unavailable")
}

func TestGetMaintenances_UpstreamRateLimited(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().ActiveMaintenances(gomock.Any()).
		Return(nil, serrors.With(serrors.ErrRateLimited, "upstream rate limited"))

	res, body := doRequest(t, mux, "/v1/maintenances/active")
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	require.Contains(t, string(body), "upstream rate limited")
}

func TestGetSnapshots(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().History(gomock.Any(), "2026-08-01T00:00:00Z", uint(5)).
		Return([]domain.Snapshot{{FetchedAt: time.Now()}}, "2026-07-31T00:00:00Z", nil)

	res, body := doRequest(t, mux, "/v1/snapshots?cursor=2026-08-01T00:00:00Z&limit=5")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed v1handler.SnapshotsResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Snapshots, 1)
	require.Equal(t, "2026-07-31T00:00:00Z", parsed.NextCursor)
}

func TestGetSnapshots_BadCursor(t *testing.T) {
	mux, st := newHandler(t)
	st.EXPECT().History(gomock.Any(), "nope", uint(v1handler.DefaultLimit)).
		Return(nil, "", serrors.With(serrors.ErrBadRequest, "invalid cursor"))

	res, body := doRequest(t, mux, "/v1/snapshots?cursor=nope")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "invalid cursor")
}
