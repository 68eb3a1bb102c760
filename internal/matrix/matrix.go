// Package matrix builds the cloud/region/service availability grid out of the
// flat component list reported by the status page. Region containers are group
// components named "<Cloud> - <Region>" (e.g. "AWS - US East (Northern
// Virginia)"); their children are the per-region service components.
package matrix

import (
	"regexp"
	"sort"
	"strings"

	"snowstat/pkg/domain"
)

// groupNamePattern matches region group names like "AWS - US West (Oregon)".
// The cloud token is matched case-insensitively and normalized afterwards.
var groupNamePattern = regexp.MustCompile(`(?i)^(AWS|Azure|GCP)\s*-\s*(.+)$`)

// cloudRank fixes the display order of cloud providers.
var cloudRank = map[string]int{ //nolint: gochecknoglobals
	"AWS":   0,
	"Azure": 1,
	"GCP":   2,
}

// cloudNames normalizes the matched cloud token to its display casing.
var cloudNames = map[string]string{ //nolint: gochecknoglobals
	"AWS":   "AWS",
	"AZURE": "Azure",
	"GCP":   "GCP",
}

// Cell is one service inside a region.
type Cell struct {
	// Service is the display name of the service.
	Service string
	// Component is the underlying status page component.
	Component domain.Component
}

// Region groups the services hosted in a single cloud region.
type Region struct {
	// Name is the region display name, e.g. "US East (Northern Virginia)".
	Name string
	// Services holds one cell per service, in canonical order.
	Services []Cell
}

// Worst returns the highest-severity status among the region's services.
func (r Region) Worst() domain.ComponentStatus {
	statuses := make([]domain.ComponentStatus, 0, len(r.Services))
	for _, cell := range r.Services {
		statuses = append(statuses, cell.Component.Status)
	}

	return domain.WorstStatus(statuses...)
}

// Service returns the cell for the named service and whether it exists.
func (r Region) Service(name string) (Cell, bool) {
	for _, cell := range r.Services {
		if cell.Service == name {
			return cell, true
		}
	}

	return Cell{}, false
}

// Cloud groups the regions of a single cloud provider.
type Cloud struct {
	// Name is the provider name: AWS, Azure or GCP.
	Name string
	// Regions holds the provider's regions sorted by name.
	Regions []Region
}

// Worst returns the highest-severity status across all regions.
func (c Cloud) Worst() domain.ComponentStatus {
	statuses := make([]domain.ComponentStatus, 0, len(c.Regions))
	for _, region := range c.Regions {
		statuses = append(statuses, region.Worst())
	}

	return domain.WorstStatus(statuses...)
}

// ServiceNames returns the union of service names across the cloud's regions,
// preserving the per-region canonical ordering.
func (c Cloud) ServiceNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, region := range c.Regions {
		for _, cell := range region.Services {
			if !seen[cell.Service] {
				seen[cell.Service] = true
				names = append(names, cell.Service)
			}
		}
	}

	return names
}

// Matrix is the full cloud/region/service availability grid.
type Matrix struct {
	// Clouds lists providers in fixed order: AWS, Azure, GCP.
	Clouds []Cloud
}

// Cloud returns the named provider and whether it exists in the matrix.
func (m Matrix) Cloud(name string) (Cloud, bool) {
	for _, cloud := range m.Clouds {
		if cloud.Name == name {
			return cloud, true
		}
	}

	return Cloud{}, false
}

// SplitGroupName extracts the cloud provider and region from a group component
// name. ok is false when the name does not follow the "<Cloud> - <Region>"
// convention, which is the case for non-region groups.
func SplitGroupName(name string) (cloud, region string, ok bool) {
	match := groupNamePattern.FindStringSubmatch(name)
	if match == nil {
		return "", "", false
	}

	return cloudNames[strings.ToUpper(match[1])], match[2], true
}

// Build assembles the availability grid from the flat component list. canonical
// controls service ordering inside each region: listed services come first in
// the given order, unlisted ones follow alphabetically.
func Build(components []domain.Component, canonical []string) Matrix {
	byID := make(map[domain.ComponentID]domain.Component, len(components))
	for _, component := range components {
		byID[component.ID] = component
	}

	regionsByCloud := make(map[string][]Region)
	for _, component := range components {
		if !component.Group {
			continue
		}

		cloud, regionName, ok := SplitGroupName(component.Name)
		if !ok {
			continue
		}

		cells := make([]Cell, 0, len(component.ComponentIDs))
		for _, childID := range component.ComponentIDs {
			child, found := byID[childID]
			if !found {
				continue
			}
			cells = append(cells, Cell{Service: child.Name, Component: child})
		}
		sortCells(cells, canonical)

		regionsByCloud[cloud] = append(regionsByCloud[cloud], Region{
			Name:     regionName,
			Services: cells,
		})
	}

	clouds := make([]Cloud, 0, len(regionsByCloud))
	for name, regions := range regionsByCloud {
		sort.Slice(regions, func(i, j int) bool { return regions[i].Name < regions[j].Name })
		clouds = append(clouds, Cloud{Name: name, Regions: regions})
	}
	sort.Slice(clouds, func(i, j int) bool { return cloudRank[clouds[i].Name] < cloudRank[clouds[j].Name] })

	return Matrix{Clouds: clouds}
}

// sortCells orders cells canonical-first, then alphabetically.
func sortCells(cells []Cell, canonical []string) {
	rank := make(map[string]int, len(canonical))
	for i, name := range canonical {
		rank[name] = i
	}

	sort.SliceStable(cells, func(i, j int) bool {
		ri, iKnown := rank[cells[i].Service]
		rj, jKnown := rank[cells[j].Service]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return cells[i].Service < cells[j].Service
		}
	})
}
