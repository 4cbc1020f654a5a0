package domain

import (
	"strings"
	"time"
)

// Vessel is an entry in the static fleet registry the simulator serves
// positions for when no live AIS feed is configured.
type Vessel struct {
	Name      string    `json:"name"`
	IMO       string    `json:"imo"`
	MMSI      string    `json:"mmsi"`
	Type      string    `json:"type"`
	Flag      string    `json:"flag"`
	DWT       int       `json:"dwt"`
	YearBuilt int       `json:"year_built"`
	Route     string    `json:"route"`
	FromPort  string    `json:"from_port"`
	ToPort    string    `json:"to_port"`
	Departure time.Time `json:"departure"`
	ETA       time.Time `json:"eta"`
}

var fleet = []Vessel{
	{
		Name: "MAERSK ESSEX", IMO: "9632506", MMSI: "219024000",
		Type: "Container Ship", Flag: "Denmark", DWT: 200285, YearBuilt: 2015,
		Route: "Asia-Europe", FromPort: "Shanghai", ToPort: "Rotterdam",
		Departure: time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC),
		ETA:       time.Date(2026, time.January, 18, 14, 0, 0, 0, time.UTC),
	},
	{
		Name: "MSC GULSUN", IMO: "9839286", MMSI: "636092430",
		Type: "Container Ship", Flag: "Liberia", DWT: 232618, YearBuilt: 2019,
		Route: "Trans-Pacific", FromPort: "Los Angeles", ToPort: "Singapore",
		Departure: time.Date(2026, time.January, 3, 10, 0, 0, 0, time.UTC),
		ETA:       time.Date(2026, time.January, 20, 8, 0, 0, 0, time.UTC),
	},
	{
		Name: "COSCO SHIPPING UNIVERSE", IMO: "9795432", MMSI: "477005900",
		Type: "Container Ship", Flag: "Hong Kong", DWT: 199988, YearBuilt: 2018,
		Route: "Asia-North America", FromPort: "Ningbo", ToPort: "Long Beach",
		Departure: time.Date(2026, time.January, 2, 6, 0, 0, 0, time.UTC),
		ETA:       time.Date(2026, time.January, 16, 18, 0, 0, 0, time.UTC),
	},
	{
		Name: "EVER GIVEN", IMO: "9811000", MMSI: "353136000",
		Type: "Container Ship", Flag: "Panama", DWT: 199629, YearBuilt: 2018,
		Route: "Asia-Europe", FromPort: "Yantian", ToPort: "Felixstowe",
		Departure: time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC),
		ETA:       time.Date(2026, time.January, 25, 10, 0, 0, 0, time.UTC),
	},
	{
		Name: "CMA CGM ANTOINE DE SAINT EXUPERY", IMO: "9454436", MMSI: "228339600",
		Type: "Container Ship", Flag: "France", DWT: 154792, YearBuilt: 2018,
		Route: "Asia-Europe", FromPort: "Busan", ToPort: "Le Havre",
		Departure: time.Date(2026, time.January, 3, 14, 0, 0, 0, time.UTC),
		ETA:       time.Date(2026, time.January, 22, 16, 0, 0, 0, time.UTC),
	},
}

// Fleet returns a copy of the static vessel registry.
func Fleet() []Vessel {
	out := make([]Vessel, len(fleet))
	copy(out, fleet)
	return out
}

// FindVessel locates a vessel by name, case-insensitively: exact match first,
// then partial (either string containing the other), preserving registry
// order so partial lookups are deterministic.
func FindVessel(name string) (Vessel, bool) {
	q := strings.ToUpper(strings.TrimSpace(name))
	if q == "" {
		return Vessel{}, false
	}
	for _, v := range fleet {
		if v.Name == q {
			return v, true
		}
	}
	for _, v := range fleet {
		if strings.Contains(v.Name, q) || strings.Contains(q, v.Name) {
			return v, true
		}
	}
	return Vessel{}, false
}

// FindVesselByIMO locates a vessel by its IMO number.
func FindVesselByIMO(imo string) (Vessel, bool) {
	for _, v := range fleet {
		if v.IMO == imo {
			return v, true
		}
	}
	return Vessel{}, false
}
