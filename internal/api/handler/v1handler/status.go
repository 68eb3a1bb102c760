package v1handler

import (
	"net/http"
	"time"

	"snowstat/internal/matrix"
	"snowstat/internal/status"
	"snowstat/pkg/domain"
)

// StatusResponse is the page-level overview returned by GET /v1/status.
type StatusResponse struct {
	Indicator   string         `json:"indicator"`
	Description string         `json:"description"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	FetchedAt   time.Time      `json:"fetchedAt"`
	Stale       bool           `json:"stale"`
	Counts      map[string]int `json:"statusCounts"`
}

// NewStatusResponse converts an overview into the wire shape.
func NewStatusResponse(overview *status.Overview) StatusResponse {
	counts := make(map[string]int)
	for st, n := range overview.Snapshot.StatusCounts() {
		counts[string(st)] = n
	}

	res := StatusResponse{
		Indicator:   string(overview.Snapshot.Summary.Indicator),
		Description: overview.Snapshot.Summary.Description,
		FetchedAt:   overview.Snapshot.FetchedAt,
		Stale:       overview.Stale,
		Counts:      counts,
	}
	if !overview.Snapshot.Summary.UpdatedAt.IsZero() {
		res.UpdatedAt = &overview.Snapshot.Summary.UpdatedAt
	}

	return res
}

// GetStatus returns the current page-level status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	overview, err := h.deps.Status.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, NewStatusResponse(overview))
}

// MatrixCell is one service inside a region in the matrix response.
type MatrixCell struct {
	Service string `json:"service"`
	Status  string `json:"status"`
	Label   string `json:"label"`
}

// MatrixRegion is one region of a cloud provider in the matrix response.
type MatrixRegion struct {
	Name     string       `json:"name"`
	Worst    string       `json:"worst"`
	Services []MatrixCell `json:"services"`
}

// MatrixCloud is one cloud provider in the matrix response.
type MatrixCloud struct {
	Name    string         `json:"name"`
	Worst   string         `json:"worst"`
	Regions []MatrixRegion `json:"regions"`
}

// MatrixResponse is the full grid returned by GET /v1/matrix.
type MatrixResponse struct {
	Stale  bool          `json:"stale"`
	Clouds []MatrixCloud `json:"clouds"`
}

// NewMatrixResponse converts the availability grid into the wire shape.
func NewMatrixResponse(m matrix.Matrix, overview *status.Overview) MatrixResponse {
	clouds := make([]MatrixCloud, 0, len(m.Clouds))
	for _, cloud := range m.Clouds {
		regions := make([]MatrixRegion, 0, len(cloud.Regions))
		for _, region := range cloud.Regions {
			cells := make([]MatrixCell, 0, len(region.Services))
			for _, cell := range region.Services {
				cells = append(cells, MatrixCell{
					Service: cell.Service,
					Status:  string(cell.Component.Status),
					Label:   cell.Component.Status.Label(),
				})
			}
			regions = append(regions, MatrixRegion{
				Name:     region.Name,
				Worst:    string(region.Worst()),
				Services: cells,
			})
		}
		clouds = append(clouds, MatrixCloud{
			Name:    cloud.Name,
			Worst:   string(cloud.Worst()),
			Regions: regions,
		})
	}

	return MatrixResponse{
		Stale:  overview.Stale,
		Clouds: clouds,
	}
}

// GetMatrix returns the cloud/region/service availability grid.
func (h *Handler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	m, overview, err := h.deps.Status.Matrix(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, NewMatrixResponse(m, overview))
}

// ComponentsResponse is the flat component list returned by GET /v1/components.
type ComponentsResponse struct {
	Stale      bool               `json:"stale"`
	Components []domain.Component `json:"components"`
}

// GetComponents returns every component from the current snapshot, including
// region group containers.
func (h *Handler) GetComponents(w http.ResponseWriter, r *http.Request) {
	overview, err := h.deps.Status.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ComponentsResponse{
		Stale:      overview.Stale,
		Components: overview.Snapshot.Components,
	})
}
