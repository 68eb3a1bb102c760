// Package tui renders the status dashboard in the terminal. It follows the
// Elm architecture: the Model holds all state, Update reacts to messages and
// View renders the current state.
//
// The dashboard shows the page-level banner, one tab per cloud provider with
// a region-by-service grid, recent incidents and maintenance windows. Three
// view modes (icons, standard colors, high contrast) keep the grid readable
// for color-blind and low-vision users.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snowstat/internal/matrix"
	"snowstat/internal/status"
	"snowstat/pkg/domain"
)

// incidentsShown caps how many incidents the dashboard lists.
const incidentsShown = 5

// Options configure the dashboard.
type Options struct {
	// RefreshInterval is how often the dashboard reloads data on its own.
	RefreshInterval time.Duration
	// IncidentLimit is how many incidents to request per reload.
	IncidentLimit uint
}

// dataMsg carries a completed data reload.
type dataMsg struct {
	overview     *status.Overview
	matrix       matrix.Matrix
	incidents    []domain.Incident
	active       []domain.Maintenance
	upcoming     []domain.Maintenance
	refreshedAt  time.Time
	maintenances error // non-fatal: maintenance fetch failed, rest is valid
}

// errMsg carries a failed data reload.
type errMsg struct{ err error }

// tickMsg triggers the periodic auto refresh.
type tickMsg time.Time

// Model is the dashboard state.
type Model struct {
	status  status.Status
	options Options

	keys keyMap
	help help.Model

	viewMode        ViewMode
	cloudIdx        int
	bannerDismissed bool

	overview    *status.Overview
	matrix      matrix.Matrix
	incidents   []domain.Incident
	active      []domain.Maintenance
	upcoming    []domain.Maintenance
	refreshedAt time.Time

	loading bool
	err     error

	width  int
	height int
}

// New creates the dashboard model.
func New(st status.Status, options Options) Model {
	if options.RefreshInterval <= 0 {
		options.RefreshInterval = 5 * time.Minute
	}
	if options.IncidentLimit == 0 {
		options.IncidentLimit = incidentsShown
	}

	return Model{
		status:  st,
		options: options,
		keys:    defaultKeyMap(),
		help:    help.New(),
		loading: true,
	}
}

// Init kicks off the first load and the auto-refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.tickCmd())
}

// loadCmd fetches everything the dashboard shows in one command.
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		grid, overview, err := m.status.Matrix(ctx)
		if err != nil {
			return errMsg{err: err}
		}

		incidents, err := m.status.Incidents(ctx, m.options.IncidentLimit)
		if err != nil {
			return errMsg{err: err}
		}

		msg := dataMsg{
			overview:    overview,
			matrix:      grid,
			incidents:   incidents,
			refreshedAt: time.Now(),
		}

		// maintenance endpoints hit the upstream API directly; failure here
		// should not blank the whole dashboard
		if active, err := m.status.ActiveMaintenances(ctx); err != nil {
			msg.maintenances = err
		} else {
			msg.active = active
		}
		if upcoming, err := m.status.UpcomingMaintenances(ctx); err != nil {
			msg.maintenances = err
		} else {
			msg.upcoming = upcoming
		}

		return msg
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.options.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update reacts to messages and returns the next model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tickMsg:
		return m, tea.Batch(m.loadCmd(), m.tickCmd())

	case dataMsg:
		m.overview = msg.overview
		m.matrix = msg.matrix
		m.incidents = msg.incidents
		m.active = msg.active
		m.upcoming = msg.upcoming
		m.refreshedAt = msg.refreshedAt
		m.loading = false
		m.err = nil
		if m.cloudIdx >= len(m.matrix.Clouds) {
			m.cloudIdx = 0
		}

		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextCloud):
		if n := len(m.matrix.Clouds); n > 0 {
			m.cloudIdx = (m.cloudIdx + 1) % n
		}

	case key.Matches(msg, m.keys.PrevCloud):
		if n := len(m.matrix.Clouds); n > 0 {
			m.cloudIdx = (m.cloudIdx - 1 + n) % n
		}

	case key.Matches(msg, m.keys.ViewMode):
		m.viewMode = m.viewMode.Next()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true

		return m, m.loadCmd()

	case key.Matches(msg, m.keys.Dismiss):
		m.bannerDismissed = true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf(" error: %v ", m.err)))
		b.WriteString("\n\n")
	}

	if m.loading && m.overview == nil {
		b.WriteString("loading status…\n")
		b.WriteString(m.help.View(m.keys))

		return b.String()
	}

	if banner := m.renderMaintenanceBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n")
	b.WriteString(m.renderIncidents())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Snowflake Status")
	if m.overview == nil {
		return title
	}

	summary := m.overview.Snapshot.Summary
	line := fmt.Sprintf("%s %s %s",
		title,
		RenderStatus(m.viewMode, summary.Indicator.Status()),
		summary.Description)

	if m.overview.Stale {
		line += " " + staleStyle.Render(fmt.Sprintf(
			"STALE: data from %s, upstream unreachable",
			RelativeTime(m.overview.Snapshot.FetchedAt, time.Now())))
	}

	return line
}

func (m Model) renderMaintenanceBanner() string {
	if m.bannerDismissed {
		return ""
	}

	var lines []string
	for _, w := range m.active {
		lines = append(lines, fmt.Sprintf("%s maintenance in progress: %s", Icon(domain.StatusUnderMaintenance), w.Name))
	}
	for _, w := range m.upcoming {
		lines = append(lines, fmt.Sprintf("upcoming maintenance %s: %s",
			w.ScheduledFor.Format("Jan 2 15:04 MST"), w.Name))
	}
	if len(lines) == 0 {
		return ""
	}

	lines = append(lines, faintStyle.Render("press d to dismiss"))

	return bannerStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTabs() string {
	if len(m.matrix.Clouds) == 0 {
		return faintStyle.Render("no region data")
	}

	tabs := make([]string, 0, len(m.matrix.Clouds))
	for i, cloud := range m.matrix.Clouds {
		label := fmt.Sprintf("%s %s", cloud.Name, Icon(cloud.Worst()))
		if i == m.cloudIdx {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderGrid() string {
	if len(m.matrix.Clouds) == 0 {
		return ""
	}

	cloud := m.matrix.Clouds[m.cloudIdx]
	var b strings.Builder
	for _, region := range cloud.Regions {
		b.WriteString(regionStyle.Render(region.Name))
		b.WriteString("\n")
		for _, cell := range region.Services {
			b.WriteString(fmt.Sprintf("  %-40s %s\n", cell.Service, RenderStatus(m.viewMode, cell.Component.Status)))
		}
	}

	return b.String()
}

func (m Model) renderLegend() string {
	statuses := []domain.ComponentStatus{
		domain.StatusOperational,
		domain.StatusDegradedPerformance,
		domain.StatusPartialOutage,
		domain.StatusMajorOutage,
		domain.StatusUnderMaintenance,
	}

	parts := make([]string, 0, len(statuses))
	for _, st := range statuses {
		if m.viewMode == ViewModeIcon {
			parts = append(parts, fmt.Sprintf("%s %s", Icon(st), st.Label()))
		} else {
			parts = append(parts, RenderStatus(m.viewMode, st))
		}
	}

	return faintStyle.Render("legend: ") + strings.Join(parts, "  ")
}

func (m Model) renderIncidents() string {
	if len(m.incidents) == 0 {
		return faintStyle.Render("no recent incidents")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent incidents"))
	b.WriteString("\n")
	shown := m.incidents
	if len(shown) > incidentsShown {
		shown = shown[:incidentsShown]
	}
	for _, incident := range shown {
		marker := "•"
		if !incident.Resolved() {
			marker = "▶"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s (%s, %s)\n",
			marker, incident.Impact, incident.Name, incident.Status,
			RelativeTime(incident.CreatedAt, time.Now())))
	}

	return b.String()
}

func (m Model) renderFooter() string {
	state := fmt.Sprintf("view: %s · refreshed %s", m.viewMode.Label(), RelativeTime(m.refreshedAt, time.Now()))
	if m.loading {
		state += " · refreshing…"
	}

	return faintStyle.Render(state) + "\n" + m.help.View(m.keys)
}
