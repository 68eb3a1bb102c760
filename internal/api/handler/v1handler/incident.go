package v1handler

import (
	"net/http"

	"snowstat/pkg/domain"
)

// IncidentsResponse is the incident history returned by GET /v1/incidents.
type IncidentsResponse struct {
	Incidents []domain.Incident `json:"incidents"`
}

// GetIncidents returns recent and unresolved incidents, newest first.
func (h *Handler) GetIncidents(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	incidents, err := h.deps.Status.Incidents(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if incidents == nil {
		incidents = []domain.Incident{}
	}

	writeJSON(w, http.StatusOK, IncidentsResponse{Incidents: incidents})
}

// MaintenancesResponse is the maintenance listing for both maintenance endpoints.
type MaintenancesResponse struct {
	Maintenances []domain.Maintenance `json:"maintenances"`
}

// GetActiveMaintenances returns maintenance windows currently in progress.
func (h *Handler) GetActiveMaintenances(w http.ResponseWriter, r *http.Request) {
	maintenances, err := h.deps.Status.ActiveMaintenances(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}
	if maintenances == nil {
		maintenances = []domain.Maintenance{}
	}

	writeJSON(w, http.StatusOK, MaintenancesResponse{Maintenances: maintenances})
}

// GetUpcomingMaintenances returns maintenance windows that have not started yet.
func (h *Handler) GetUpcomingMaintenances(w http.ResponseWriter, r *http.Request) {
	maintenances, err := h.deps.Status.UpcomingMaintenances(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}
	if maintenances == nil {
		maintenances = []domain.Maintenance{}
	}

	writeJSON(w, http.StatusOK, MaintenancesResponse{Maintenances: maintenances})
}
