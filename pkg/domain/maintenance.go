package domain

import "time"

// Maintenance is a scheduled maintenance window from the status page.
type Maintenance struct {
	// ID is the upstream maintenance identifier.
	ID string `json:"id"`
	// Name is the maintenance title.
	Name string `json:"name"`
	// Status is the window state (scheduled, in_progress, verifying, completed).
	Status string `json:"status"`
	// Impact is the upstream impact classification.
	Impact string `json:"impact"`
	// Shortlink points at the upstream maintenance page.
	Shortlink string `json:"shortlink,omitempty"`

	// ScheduledFor is the planned start of the window.
	ScheduledFor time.Time `json:"scheduledFor"`
	// ScheduledUntil is the planned end of the window.
	ScheduledUntil time.Time `json:"scheduledUntil"`
	// CreatedAt is when the window was announced.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the window last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
