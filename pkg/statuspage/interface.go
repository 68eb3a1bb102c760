// Package statuspage defines the client abstraction for reading a Statuspage
// v2 status site such as status.snowflake.com.
package statuspage

import (
	"context"
	"snowstat/pkg/domain"
)

// Client is the abstraction over a Statuspage v2 site. Implementations fetch
// and normalize the public JSON endpoints into domain types.
//
//go:generate mockgen -package mockstatuspage -source=interface.go -destination=mock/mockstatuspage.go *
type Client interface {
	// Summary fetches the page-level status from summary.json.
	Summary(ctx context.Context) (*domain.Summary, error)
	// Components fetches all components, including group containers.
	Components(ctx context.Context) ([]domain.Component, error)
	// Incidents fetches the recent incident history, newest first.
	Incidents(ctx context.Context) ([]domain.Incident, error)
	// ActiveMaintenances fetches maintenance windows currently in progress.
	ActiveMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	// UpcomingMaintenances fetches maintenance windows that have not started yet.
	UpcomingMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	// AllMaintenances fetches the recent maintenance history, latest scheduled first.
	AllMaintenances(ctx context.Context) ([]domain.Maintenance, error)
}
