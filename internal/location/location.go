// Package location holds the read-only location data shown in the grid.
package location

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Location is a named place with coordinates and free-form tags.
type Location struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
	Tags      []string `yaml:"tags,omitempty"`
}

// Coordinates formats latitude and longitude to four decimals.
func (l Location) Coordinates() string {
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}

// Cells returns the labels of the location's grid row: name, coordinates,
// then one cell per tag. Rows therefore differ in length.
func (l Location) Cells() []string {
	cells := make([]string, 0, 2+len(l.Tags))
	cells = append(cells, l.Name, l.Coordinates())
	cells = append(cells, l.Tags...)
	return cells
}

// Filter returns the locations whose name or any tag contains query,
// compared under Unicode case folding. An empty query returns all locations.
func Filter(locs []Location, query string) []Location {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return locs
	}
	var out []Location
	for _, l := range locs {
		if matches(fold, l, q) {
			out = append(out, l)
		}
	}
	return out
}

func matches(fold cases.Caser, l Location, q string) bool {
	if strings.Contains(fold.String(l.Name), q) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(fold.String(tag), q) {
			return true
		}
	}
	return false
}

// Demo returns the built-in locations: five squares along Broadway.
func Demo() []Location {
	return []Location{
		{ID: "union-square", Name: "Union Square", Latitude: 40.7359, Longitude: -73.9911, Tags: []string{"park", "greenmarket", "subway"}},
		{ID: "madison-square", Name: "Madison Square", Latitude: 40.7420, Longitude: -73.9876, Tags: []string{"park", "dog run"}},
		{ID: "herald-square", Name: "Herald Square", Latitude: 40.7498, Longitude: -73.9878, Tags: []string{"plaza"}},
		{ID: "times-square", Name: "Times Square", Latitude: 40.7580, Longitude: -73.9855, Tags: []string{"plaza", "theater district", "subway"}},
		{ID: "columbus-circle", Name: "Columbus Circle", Latitude: 40.7681, Longitude: -73.9819, Tags: []string{"monument"}},
	}
}
