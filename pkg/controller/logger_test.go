package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"snowstat/pkg/controller"
	"snowstat/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{name: "x-forwarded-for first hop", forwarded: "1.2.3.4, 5.6.7.8", want: "1.2.3.4"},
		{name: "x-real-ip", realIP: "9.8.7.6", want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "unparsable remote addr passes through", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			if tc.remoteAddr != "" {
				req.RemoteAddr = tc.remoteAddr
			}

			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

// echoRequestID copies the request ID from the context into a response header
// so tests can observe what the middleware injected.
func echoRequestID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, _ := r.Context().Value(controller.RequestIDKey).(string); id != "" {
			w.Header().Set("X-Echo-Request-Id", id)
		}
		w.WriteHeader(http.StatusCreated)
	})
}

func TestWithLogger_PropagatesClientRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()

	controller.WithLogger(echoRequestID()).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	rec := httptest.NewRecorder()

	controller.WithLogger(echoRequestID()).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Echo-Request-Id"))
}
