package domain

import "time"

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// VesselRoute is a straight-line shipping lane with a representative
// schedule. Routes are immutable reference data: the simulator derives
// positions from them and never mutates one.
type VesselRoute struct {
	Name      string     `json:"name"`
	Start     Coordinate `json:"start"`
	End       Coordinate `json:"end"`
	Departure time.Time  `json:"departure"`
	Arrival   time.Time  `json:"arrival"`
}

// routeTable holds the major lanes served by the static fleet. The schedule
// on each lane mirrors its flagship voyage.
var routeTable = map[string]VesselRoute{
	"Asia-Europe": {
		Name:      "Asia-Europe",
		Start:     Coordinate{Lat: 31.2, Lon: 121.5}, // Shanghai
		End:       Coordinate{Lat: 51.9, Lon: 4.5},   // Rotterdam
		Departure: time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC),
		Arrival:   time.Date(2026, time.January, 18, 14, 0, 0, 0, time.UTC),
	},
	"Trans-Pacific": {
		Name:      "Trans-Pacific",
		Start:     Coordinate{Lat: 33.7, Lon: -118.2}, // Los Angeles
		End:       Coordinate{Lat: 1.3, Lon: 103.9},   // Singapore
		Departure: time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC),
		Arrival:   time.Date(2026, time.January, 20, 8, 0, 0, 0, time.UTC),
	},
	"Asia-North America": {
		Name:      "Asia-North America",
		Start:     Coordinate{Lat: 29.9, Lon: 121.6},  // Ningbo
		End:       Coordinate{Lat: 33.7, Lon: -118.2}, // Long Beach
		Departure: time.Date(2026, time.January, 2, 6, 0, 0, 0, time.UTC),
		Arrival:   time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC),
	},
}

// RouteByName looks up a lane by its exact name.
func RouteByName(name string) (VesselRoute, bool) {
	r, ok := routeTable[name]
	return r, ok
}

// Routes returns a copy of every configured lane.
func Routes() []VesselRoute {
	out := make([]VesselRoute, 0, len(routeTable))
	for _, r := range routeTable {
		out = append(out, r)
	}
	return out
}
