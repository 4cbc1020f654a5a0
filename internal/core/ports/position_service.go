package ports

import (
	"context"
	"time"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// Position data sources.
const (
	PositionSourceSimulated = "simulated"
	PositionSourceLive      = "live"
)

// VesselPosition is a point-in-time position fix, simulated or live.
type VesselPosition struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	HeadingDeg int       `json:"heading_deg"`
	SpeedKnots float64   `json:"speed_knots"`
	Progress   float64   `json:"progress"`
	NavStatus  string    `json:"nav_status"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
}

// VesselTrack couples a fleet vessel with its current position.
type VesselTrack struct {
	Vessel   domain.Vessel  `json:"vessel"`
	Position VesselPosition `json:"position"`
}

// PositionService produces vessel positions: live AIS fixes when a feed is
// configured, deterministic geometric simulation otherwise.
type PositionService interface {
	// SimulateRoute interpolates a position along the named static lane at
	// the given instant. Unknown names fail with *domain.UnknownRouteError.
	SimulateRoute(routeName string, now time.Time) (*VesselPosition, error)

	// TrackVessel finds a fleet vessel by (possibly partial) name and returns
	// its current position, preferring the live feed when one is wired.
	TrackVessel(ctx context.Context, name string, now time.Time) (*VesselTrack, error)
}
