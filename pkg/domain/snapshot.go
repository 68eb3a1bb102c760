package domain

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotID uniquely identifies a stored status snapshot.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SnapshotID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id SnapshotID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID as a canonical UUID string.
func (id SnapshotID) MarshalText() ([]byte, error) {
	return []byte(uuid.UUID(id).String()), nil
}

// UnmarshalText parses a canonical UUID string.
func (id *SnapshotID) UnmarshalText(text []byte) error {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = SnapshotID(parsed)

	return nil
}

// Summary is the page-level status from the summary endpoint.
type Summary struct {
	// Indicator is the page-level severity indicator.
	Indicator Indicator `json:"indicator"`
	// Description is the headline text, e.g. "All Systems Operational".
	Description string `json:"description"`
	// UpdatedAt is the upstream page's last-updated timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot is a point-in-time capture of the whole status page: the summary,
// all components and the maintenance windows active at fetch time. Snapshots
// are immutable once stored; one row is written per successful poll.
type Snapshot struct {
	// ID is the unique identifier of the snapshot.
	ID SnapshotID `json:"id"`

	// Summary is the page-level status at fetch time.
	Summary Summary `json:"summary"`
	// Components holds every component, including group containers.
	Components []Component `json:"components"`
	// Maintenances lists maintenance windows active at fetch time.
	Maintenances []Maintenance `json:"maintenances,omitempty"`

	// FetchedAt is when the upstream API was queried.
	FetchedAt time.Time `json:"fetchedAt"`
	// CreatedAt is when the snapshot row was stored.
	CreatedAt time.Time `json:"createdAt"`
}

// Age returns how old the snapshot data is relative to now.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// StatusCounts tallies the snapshot's non-group components by status label.
func (s Snapshot) StatusCounts() map[ComponentStatus]int {
	counts := make(map[ComponentStatus]int)
	for _, c := range s.Components {
		if c.Group {
			continue
		}
		counts[c.Status]++
	}

	return counts
}
