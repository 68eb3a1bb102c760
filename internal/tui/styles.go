package tui

import (
	"github.com/charmbracelet/lipgloss"

	"snowstat/pkg/domain"
)

// ViewMode selects how component statuses are rendered. Icon mode works
// without color at all, standard mode uses the regular palette, and high
// contrast mode uses a darker palette that meets WCAG AAA contrast on light
// and dark backgrounds.
type ViewMode int

const (
	// ViewModeIcon renders statuses as plain symbols, no color.
	ViewModeIcon ViewMode = iota
	// ViewModeStandard renders statuses with the regular color palette.
	ViewModeStandard
	// ViewModeHighContrast renders statuses with a WCAG-AAA palette.
	ViewModeHighContrast

	viewModeCount
)

// Next cycles to the following view mode.
func (m ViewMode) Next() ViewMode { return (m + 1) % viewModeCount }

// Label returns the name shown in the footer.
func (m ViewMode) Label() string {
	switch m {
	case ViewModeIcon:
		return "icons"
	case ViewModeStandard:
		return "standard colors"
	case ViewModeHighContrast:
		return "high contrast"
	default:
		return "unknown"
	}
}

// statusIcons maps each status to its symbol. The symbols are chosen so the
// grid stays readable on terminals without color support.
var statusIcons = map[domain.ComponentStatus]string{ //nolint: gochecknoglobals
	domain.StatusOperational:         "✓",
	domain.StatusDegradedPerformance: "⚠",
	domain.StatusPartialOutage:       "✗",
	domain.StatusMajorOutage:         "✗✗",
	domain.StatusUnderMaintenance:    "🔧",
}

// standardPalette is the regular status color palette.
var standardPalette = map[domain.ComponentStatus]lipgloss.Color{ //nolint: gochecknoglobals
	domain.StatusOperational:         lipgloss.Color("#2ECC71"),
	domain.StatusDegradedPerformance: lipgloss.Color("#F39C12"),
	domain.StatusPartialOutage:       lipgloss.Color("#E74C3C"),
	domain.StatusMajorOutage:         lipgloss.Color("#C0392B"),
	domain.StatusUnderMaintenance:    lipgloss.Color("#3498DB"),
}

// highContrastPalette meets WCAG AAA contrast requirements.
var highContrastPalette = map[domain.ComponentStatus]lipgloss.Color{ //nolint: gochecknoglobals
	domain.StatusOperational:         lipgloss.Color("#006400"),
	domain.StatusDegradedPerformance: lipgloss.Color("#CC7000"),
	domain.StatusPartialOutage:       lipgloss.Color("#B30000"),
	domain.StatusMajorOutage:         lipgloss.Color("#800000"),
	domain.StatusUnderMaintenance:    lipgloss.Color("#00008B"),
}

// Icon returns the plain symbol for a status.
func Icon(status domain.ComponentStatus) string {
	if icon, ok := statusIcons[status]; ok {
		return icon
	}

	return "?"
}

// RenderStatus renders a status cell for the given view mode. Icon mode emits
// the bare symbol; the color modes emit the symbol plus label in the palette
// color so information is never conveyed by color alone.
func RenderStatus(mode ViewMode, status domain.ComponentStatus) string {
	icon := Icon(status)
	if mode == ViewModeIcon {
		return icon
	}

	palette := standardPalette
	if mode == ViewModeHighContrast {
		palette = highContrastPalette
	}

	return lipgloss.NewStyle().
		Foreground(palette[status]).
		Render(icon + " " + status.Label())
}

//nolint: gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)

	regionStyle = lipgloss.NewStyle().Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	staleStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)

	faintStyle = lipgloss.NewStyle().Faint(true)

	errStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)
