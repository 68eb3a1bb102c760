// Package v1handler implements the v1 HTTP API: read-only JSON endpoints over
// the status service.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"snowstat/internal/status"
	"snowstat/pkg/logger"
	"snowstat/pkg/serrors"

	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when the client does not pass one.
	DefaultLimit = 20
	// MaxLimit caps client-provided page sizes.
	MaxLimit = 100
)

// Deps bundles the dependencies the v1 handlers need.
type Deps struct {
	// Status is the service behind every endpoint.
	Status status.Status
}

// Handler serves the v1 API endpoints.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches all v1 routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/status", h.GetStatus)
	mux.HandleFunc("GET /v1/matrix", h.GetMatrix)
	mux.HandleFunc("GET /v1/components", h.GetComponents)
	mux.HandleFunc("GET /v1/incidents", h.GetIncidents)
	mux.HandleFunc("GET /v1/maintenances/active", h.GetActiveMaintenances)
	mux.HandleFunc("GET /v1/maintenances/upcoming", h.GetUpcomingMaintenances)
	mux.HandleFunc("GET /v1/snapshots", h.GetSnapshots)
}

// errorResponse is the JSON error envelope for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON marshals v into the response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps semantic error kinds onto HTTP status codes. Unclassified
// errors become 500s with a generic message so internals never leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var kindErr *serrors.Error
	if !errors.As(err, &kindErr) {
		logger.Error(r.Context(), "unhandled error in v1 handler", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})

		return
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		code = http.StatusBadRequest
	case errors.Is(err, serrors.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		code = http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrUnavailable):
		code = http.StatusServiceUnavailable
	case errors.Is(err, serrors.ErrTimeout):
		code = http.StatusGatewayTimeout
	}

	if code == http.StatusInternalServerError {
		logger.Error(r.Context(), "internal error in v1 handler", zap.Error(err))
		writeJSON(w, code, errorResponse{Error: "internal server error"})

		return
	}

	writeJSON(w, code, errorResponse{Error: kindErr.Message()})
}

// parseLimit reads the "limit" query parameter, applying the default and cap.
func parseLimit(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return uint(limit), nil
}
