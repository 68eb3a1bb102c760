// Package domain contains the core entities of the status service: component
// statuses, incidents, maintenance windows and point-in-time snapshots. These
// types represent Snowflake operational health concepts and are intentionally
// free of infrastructure concerns so they can be shared across packages.
package domain
