// Package progress maps a package's current station onto the fixed route.
package progress

import "trackit/internal/entities"

type Step struct {
	Station     entities.Station
	Coordinates entities.Coordinates
	Reached     bool
	Current     bool
}

// Index returns the zero-based position of station on the route, or -1.
func Index(station entities.Station) int {
	for i, s := range entities.StationOrder {
		if s == station {
			return i
		}
	}
	return -1
}

// Fraction is the share of the route covered once station is reached.
func Fraction(station entities.Station) float64 {
	idx := Index(station)
	if idx < 0 {
		return 0
	}
	return float64(idx+1) / float64(len(entities.StationOrder))
}

// Timeline lists every station on the route. With an unknown station nothing is reached.
func Timeline(station entities.Station) []Step {
	idx := Index(station)

	steps := make([]Step, 0, len(entities.StationOrder))
	for i, s := range entities.StationOrder {
		coords, _ := s.Coordinates()
		steps = append(steps, Step{
			Station:     s,
			Coordinates: coords,
			Reached:     idx >= 0 && i <= idx,
			Current:     i == idx,
		})
	}
	return steps
}
