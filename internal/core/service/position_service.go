package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api/metrics"
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

const navStatusUnderway = "Under way using engine"

// Simulated speeds stay inside the typical container-ship service band.
const (
	minSpeedKnots = 18.0
	maxSpeedKnots = 22.0
)

type positionService struct {
	feed ports.VesselFeed // nil when no live feed is configured
	rng  func() float64   // uniform [0,1); injectable for deterministic tests
	log  zerolog.Logger
}

// NewPositionService returns the PositionService. feed may be nil, in which
// case every position is simulated.
func NewPositionService(feed ports.VesselFeed, log zerolog.Logger) ports.PositionService {
	return &positionService{feed: feed, rng: rand.Float64, log: log}
}

// SimulateRoute interpolates a position along the named static lane.
func (s *positionService) SimulateRoute(routeName string, now time.Time) (*ports.VesselPosition, error) {
	route, ok := domain.RouteByName(routeName)
	if !ok {
		return nil, &domain.UnknownRouteError{Name: routeName}
	}
	pos := s.simulate(route.Start, route.End, route.Departure, route.Arrival, now)
	metrics.VesselPositionsTotal.WithLabelValues(ports.PositionSourceSimulated).Inc()
	return pos, nil
}

// TrackVessel resolves a fleet vessel by name and produces its position,
// preferring the live feed. A feed failure degrades to the simulator rather
// than failing the request; only an unknown vessel is an error.
func (s *positionService) TrackVessel(ctx context.Context, name string, now time.Time) (*ports.VesselTrack, error) {
	vessel, ok := domain.FindVessel(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrVesselNotFound, name)
	}

	if s.feed != nil {
		pos, err := s.feed.FetchPosition(ctx, vessel.IMO)
		if err == nil {
			// The feed knows the fix but not the voyage; progress comes from
			// the vessel's own schedule.
			pos.Progress = round4(progressBetween(vessel.Departure, vessel.ETA, now))
			metrics.VesselPositionsTotal.WithLabelValues(ports.PositionSourceLive).Inc()
			return &ports.VesselTrack{Vessel: vessel, Position: *pos}, nil
		}
		s.log.Warn().Err(err).
			Str("vessel", vessel.Name).
			Str("imo", vessel.IMO).
			Msg("live feed unavailable, simulating position")
	}

	route, ok := domain.RouteByName(vessel.Route)
	if !ok {
		return nil, &domain.UnknownRouteError{Name: vessel.Route}
	}
	// Lane geometry with the vessel's own schedule: two vessels sharing a
	// lane still report distinct positions.
	pos := s.simulate(route.Start, route.End, vessel.Departure, vessel.ETA, now)
	metrics.VesselPositionsTotal.WithLabelValues(ports.PositionSourceSimulated).Inc()
	return &ports.VesselTrack{Vessel: vessel, Position: *pos}, nil
}

// simulate produces one plausible fix by linear interpolation between start
// and end at the voyage's time progress, with up to half a degree of noise
// on each axis so repeated calls look like AIS drift.
func (s *positionService) simulate(start, end domain.Coordinate, departure, arrival, now time.Time) *ports.VesselPosition {
	progress := progressBetween(departure, arrival, now)

	lat := lerp(start.Lat, end.Lat, progress) + (s.rng() - 0.5)
	lon := lerp(start.Lon, end.Lon, progress) + (s.rng() - 0.5)
	speed := round1(minSpeedKnots + s.rng()*(maxSpeedKnots-minSpeedKnots))

	return &ports.VesselPosition{
		Lat:        round4(lat),
		Lon:        round4(lon),
		HeadingDeg: headingDegrees(start, end),
		SpeedKnots: speed,
		Progress:   round4(progress),
		NavStatus:  navStatusUnderway,
		Source:     ports.PositionSourceSimulated,
		Timestamp:  now.UTC(),
	}
}

// progressBetween is the voyage's elapsed-time fraction clamped to [0,1].
// A degenerate schedule (arrival at or before departure) pins the vessel
// mid-route instead of dividing by zero.
func progressBetween(departure, arrival, now time.Time) float64 {
	total := arrival.Sub(departure)
	if total <= 0 {
		return 0.5
	}
	p := float64(now.Sub(departure)) / float64(total)
	return math.Min(1, math.Max(0, p))
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// headingDegrees is the lane's constant bearing in whole degrees, measured
// clockwise from north on the flat lat/lon plane.
func headingDegrees(start, end domain.Coordinate) int {
	deg := math.Atan2(end.Lon-start.Lon, end.Lat-start.Lat) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return int(deg)
}

func round4(x float64) float64 { return math.Round(x*10000) / 10000 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
