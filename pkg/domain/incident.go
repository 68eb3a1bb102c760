package domain

import "time"

// IncidentUpdate is a single timeline message posted on an incident.
type IncidentUpdate struct {
	// ID is the upstream update identifier.
	ID string `json:"id"`
	// Status is the incident state this update moved to (investigating,
	// identified, monitoring, resolved, ...).
	Status string `json:"status"`
	// Body is the human-readable message text.
	Body string `json:"body"`
	// CreatedAt is when the update was posted.
	CreatedAt time.Time `json:"createdAt"`
	// DisplayAt is the timestamp the upstream page displays for the update.
	DisplayAt time.Time `json:"displayAt"`
}

// Incident is a service disruption reported on the status page.
type Incident struct {
	// ID is the upstream incident identifier.
	ID string `json:"id"`
	// Name is the incident title.
	Name string `json:"name"`
	// Status is the current incident state.
	Status string `json:"status"`
	// Impact is the upstream impact classification (minor, major, critical).
	Impact string `json:"impact"`
	// Shortlink points at the upstream incident page.
	Shortlink string `json:"shortlink,omitempty"`
	// Updates holds the incident timeline, newest first.
	Updates []IncidentUpdate `json:"updates,omitempty"`

	// CreatedAt is when the incident was opened.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the incident last changed.
	UpdatedAt time.Time `json:"updatedAt"`
	// ResolvedAt is when the incident was resolved; zero while ongoing.
	ResolvedAt time.Time `json:"resolvedAt"`
}

// Resolved reports whether the incident has reached a terminal state.
func (i Incident) Resolved() bool {
	return i.Status == "resolved" || i.Status == "postmortem"
}
