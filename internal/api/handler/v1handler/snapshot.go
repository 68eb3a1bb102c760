package v1handler

import (
	"net/http"

	"snowstat/pkg/domain"
)

// SnapshotsResponse is the snapshot history page returned by GET /v1/snapshots.
type SnapshotsResponse struct {
	Snapshots  []domain.Snapshot `json:"snapshots"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

// GetSnapshots returns a page of stored snapshots, newest first. The cursor
// query parameter is the nextCursor value from a previous page.
func (h *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	snapshots, next, err := h.deps.Status.History(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		writeError(w, r, err)

		return
	}
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}

	writeJSON(w, http.StatusOK, SnapshotsResponse{
		Snapshots:  snapshots,
		NextCursor: next,
	})
}
