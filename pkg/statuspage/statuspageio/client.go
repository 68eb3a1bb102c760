// Package statuspageio provides a statuspage.Client implementation backed by
// the public Statuspage v2 JSON endpoints.
package statuspageio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"snowstat/pkg/domain"
	"snowstat/pkg/serrors"
	"snowstat/pkg/statuspage"
)

// Client reads a Statuspage v2 site such as status.snowflake.com/api/v2 and
// fulfills the statuspage.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the status site
	baseURL    string       // baseURL is the API root, without trailing slash
}

// parseTime parses an RFC3339 timestamp from the wire, returning the zero
// time for empty or malformed values. The upstream page omits or nulls
// timestamps on some records; those are not fatal.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// get performs a GET request against baseURL/endpoint and returns the raw
// body. Status codes are mapped to semantic errors: 404 to ErrNotFound, 429
// to ErrRateLimited, any other non-2xx to ErrUnavailable carrying the body.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "%s not found", endpoint)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "get %s failed: %s", endpoint, strings.TrimSpace(string(b)))
	}

	return b, nil
}

// Summary fetches and normalizes summary.json.
func (c *Client) Summary(ctx context.Context) (*domain.Summary, error) {
	b, err := c.get(ctx, "summary.json")
	if err != nil {
		return nil, err
	}

	var raw struct {
		Page struct {
			UpdatedAt string `json:"updated_at"`
		} `json:"page"`
		Status struct {
			Indicator   string `json:"indicator"`
			Description string `json:"description"`
		} `json:"status"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode summary: %w", err)
	}

	indicator := domain.Indicator(raw.Status.Indicator)
	if indicator == "" {
		indicator = domain.IndicatorNone
	}
	description := raw.Status.Description
	if description == "" {
		description = "All Systems Operational"
	}

	return &domain.Summary{
		Indicator:   indicator,
		Description: description,
		UpdatedAt:   parseTime(raw.Page.UpdatedAt),
	}, nil
}

// wireComponent is the components.json item shape.
type wireComponent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	GroupID     string   `json:"group_id"`
	Group       bool     `json:"group"`
	Components  []string `json:"components"`
	Description string   `json:"description"`
	UpdatedAt   string   `json:"updated_at"`
}

func (w wireComponent) toDomain() domain.Component {
	var children []domain.ComponentID
	if w.Group {
		children = make([]domain.ComponentID, 0, len(w.Components))
		for _, id := range w.Components {
			children = append(children, domain.ComponentID(id))
		}
	}

	name := w.Name
	if name == "" {
		name = "Unknown"
	}

	return domain.Component{
		ID:           domain.ComponentID(w.ID),
		Name:         name,
		Status:       domain.ParseComponentStatus(w.Status),
		GroupID:      domain.ComponentID(w.GroupID),
		Group:        w.Group,
		ComponentIDs: children,
		Description:  w.Description,
		UpdatedAt:    parseTime(w.UpdatedAt),
	}
}

// Components fetches and normalizes components.json. Items without an ID are
// skipped rather than failing the whole fetch.
func (c *Client) Components(ctx context.Context) ([]domain.Component, error) {
	b, err := c.get(ctx, "components.json")
	if err != nil {
		return nil, err
	}

	var raw struct {
		Components []wireComponent `json:"components"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode components: %w", err)
	}

	out := make([]domain.Component, 0, len(raw.Components))
	for _, wc := range raw.Components {
		if wc.ID == "" {
			continue
		}
		out = append(out, wc.toDomain())
	}

	return out, nil
}

// wireIncident is the incidents.json item shape.
type wireIncident struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	Impact          string `json:"impact"`
	Shortlink       string `json:"shortlink"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	ResolvedAt      string `json:"resolved_at"`
	IncidentUpdates []struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		Body      string `json:"body"`
		CreatedAt string `json:"created_at"`
		DisplayAt string `json:"display_at"`
	} `json:"incident_updates"`
}

func (w wireIncident) toDomain() domain.Incident {
	updates := make([]domain.IncidentUpdate, 0, len(w.IncidentUpdates))
	for _, u := range w.IncidentUpdates {
		updates = append(updates, domain.IncidentUpdate{
			ID:        u.ID,
			Status:    u.Status,
			Body:      u.Body,
			CreatedAt: parseTime(u.CreatedAt),
			DisplayAt: parseTime(u.DisplayAt),
		})
	}

	name := w.Name
	if name == "" {
		name = "Unnamed Incident"
	}

	return domain.Incident{
		ID:         w.ID,
		Name:       name,
		Status:     w.Status,
		Impact:     w.Impact,
		Shortlink:  w.Shortlink,
		Updates:    updates,
		CreatedAt:  parseTime(w.CreatedAt),
		UpdatedAt:  parseTime(w.UpdatedAt),
		ResolvedAt: parseTime(w.ResolvedAt),
	}
}

// Incidents fetches and normalizes incidents.json, sorted newest first.
func (c *Client) Incidents(ctx context.Context) ([]domain.Incident, error) {
	b, err := c.get(ctx, "incidents.json")
	if err != nil {
		return nil, err
	}

	var raw struct {
		Incidents []wireIncident `json:"incidents"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode incidents: %w", err)
	}

	out := make([]domain.Incident, 0, len(raw.Incidents))
	for _, wi := range raw.Incidents {
		if wi.ID == "" {
			continue
		}
		out = append(out, wi.toDomain())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

// wireMaintenance is the scheduled-maintenances item shape.
type wireMaintenance struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Impact         string `json:"impact"`
	Shortlink      string `json:"shortlink"`
	ScheduledFor   string `json:"scheduled_for"`
	ScheduledUntil string `json:"scheduled_until"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func (w wireMaintenance) toDomain() domain.Maintenance {
	name := w.Name
	if name == "" {
		name = "Unnamed Maintenance"
	}

	return domain.Maintenance{
		ID:             w.ID,
		Name:           name,
		Status:         w.Status,
		Impact:         w.Impact,
		Shortlink:      w.Shortlink,
		ScheduledFor:   parseTime(w.ScheduledFor),
		ScheduledUntil: parseTime(w.ScheduledUntil),
		CreatedAt:      parseTime(w.CreatedAt),
		UpdatedAt:      parseTime(w.UpdatedAt),
	}
}

// maintenances fetches and normalizes one of the scheduled-maintenances
// endpoints.
func (c *Client) maintenances(ctx context.Context, endpoint string) ([]domain.Maintenance, error) {
	b, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var raw struct {
		ScheduledMaintenances []wireMaintenance `json:"scheduled_maintenances"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode maintenances: %w", err)
	}

	out := make([]domain.Maintenance, 0, len(raw.ScheduledMaintenances))
	for _, wm := range raw.ScheduledMaintenances {
		if wm.ID == "" {
			continue
		}
		out = append(out, wm.toDomain())
	}

	return out, nil
}

// ActiveMaintenances fetches maintenance windows currently in progress.
func (c *Client) ActiveMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	return c.maintenances(ctx, "scheduled-maintenances/active.json")
}

// UpcomingMaintenances fetches maintenance windows that have not started yet.
func (c *Client) UpcomingMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	return c.maintenances(ctx, "scheduled-maintenances/upcoming.json")
}

// AllMaintenances fetches the recent maintenance history, ordered by
// scheduled start descending.
func (c *Client) AllMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	out, err := c.maintenances(ctx, "scheduled-maintenances.json")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledFor.After(out[j].ScheduledFor)
	})

	return out, nil
}

// Ensure Client conforms to the statuspage.Client interface at compile time.
var _ statuspage.Client = (*Client)(nil)

// New constructs a Client that reads the Statuspage v2 API rooted at baseURL
// using the provided http.Client.
func New(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}
