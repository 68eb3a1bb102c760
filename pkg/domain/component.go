package domain

import "time"

// ComponentID identifies a component on the upstream status page.
type ComponentID string

// Component is a single entry from the components endpoint. Group components
// represent regions (e.g. "AWS - US West (Oregon)") and list the IDs of their
// child service components.
type Component struct {
	// ID is the upstream component identifier.
	ID ComponentID `json:"id"`
	// Name is the display name, e.g. "Virtual Warehouses".
	Name string `json:"name"`
	// Status is the normalized health state of the component.
	Status ComponentStatus `json:"status"`
	// GroupID references the parent group component, if any.
	GroupID ComponentID `json:"groupId,omitempty"`
	// Group marks region containers that hold child components.
	Group bool `json:"group"`
	// ComponentIDs lists child components when Group is set.
	ComponentIDs []ComponentID `json:"componentIds,omitempty"`
	// Description is the optional upstream description text.
	Description string `json:"description,omitempty"`
	// UpdatedAt is when the upstream page last touched this component.
	UpdatedAt time.Time `json:"updatedAt"`
}
