package domain

import "strings"

// ComponentStatus is the health state of a single service component as
// reported by the Statuspage API.
type ComponentStatus string

const (
	// StatusOperational indicates the component works normally.
	StatusOperational ComponentStatus = "operational"
	// StatusDegradedPerformance indicates the component is slower than usual.
	StatusDegradedPerformance ComponentStatus = "degraded_performance"
	// StatusPartialOutage indicates the component is unavailable for some users.
	StatusPartialOutage ComponentStatus = "partial_outage"
	// StatusMajorOutage indicates the component is unavailable for all users.
	StatusMajorOutage ComponentStatus = "major_outage"
	// StatusUnderMaintenance indicates planned maintenance is in progress.
	StatusUnderMaintenance ComponentStatus = "under_maintenance"
)

// statusSeverity orders statuses from healthy to broken. Higher is worse.
var statusSeverity = map[ComponentStatus]int{ //nolint: gochecknoglobals
	StatusOperational:         0,
	StatusUnderMaintenance:    1,
	StatusDegradedPerformance: 2,
	StatusPartialOutage:       3,
	StatusMajorOutage:         4,
}

// ParseComponentStatus normalizes a raw status string from the API into a
// ComponentStatus. Unknown or empty values map to StatusOperational, matching
// how the upstream page treats components it cannot classify.
func ParseComponentStatus(raw string) ComponentStatus {
	s := ComponentStatus(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_"))
	if _, ok := statusSeverity[s]; !ok {
		return StatusOperational
	}

	return s
}

// Severity returns the numeric severity rank of the status. Unknown statuses
// rank as operational.
func (s ComponentStatus) Severity() int { return statusSeverity[s] }

// Label returns a human-readable label for the status.
func (s ComponentStatus) Label() string {
	switch s {
	case StatusOperational:
		return "Operational"
	case StatusDegradedPerformance:
		return "Degraded Performance"
	case StatusPartialOutage:
		return "Partial Outage"
	case StatusMajorOutage:
		return "Major Outage"
	case StatusUnderMaintenance:
		return "Under Maintenance"
	default:
		return "Unknown"
	}
}

// WorstStatus returns the highest-severity status from the given list.
// An empty list is considered operational.
func WorstStatus(statuses ...ComponentStatus) ComponentStatus {
	worst := StatusOperational
	for _, s := range statuses {
		if s.Severity() > worst.Severity() {
			worst = s
		}
	}

	return worst
}

// Indicator is the page-level status indicator from the summary endpoint.
type Indicator string

const (
	// IndicatorNone means all systems operational.
	IndicatorNone Indicator = "none"
	// IndicatorMinor means a minor service disruption.
	IndicatorMinor Indicator = "minor"
	// IndicatorMajor means a major service disruption.
	IndicatorMajor Indicator = "major"
	// IndicatorCritical means a critical service outage.
	IndicatorCritical Indicator = "critical"
)

// Status maps the page indicator to the component status scale so both can be
// rendered with the same palette and icons.
func (i Indicator) Status() ComponentStatus {
	switch i {
	case IndicatorMinor:
		return StatusDegradedPerformance
	case IndicatorMajor:
		return StatusPartialOutage
	case IndicatorCritical:
		return StatusMajorOutage
	case IndicatorNone:
		return StatusOperational
	default:
		return StatusOperational
	}
}
