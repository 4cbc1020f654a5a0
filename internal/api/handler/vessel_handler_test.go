package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

type stubPositions struct {
	simulateFn func(routeName string, now time.Time) (*ports.VesselPosition, error)
	trackFn    func(ctx context.Context, name string, now time.Time) (*ports.VesselTrack, error)
}

func (s *stubPositions) SimulateRoute(routeName string, now time.Time) (*ports.VesselPosition, error) {
	return s.simulateFn(routeName, now)
}

func (s *stubPositions) TrackVessel(ctx context.Context, name string, now time.Time) (*ports.VesselTrack, error) {
	return s.trackFn(ctx, name, now)
}

func TestVesselHandler_Track_UnescapesName(t *testing.T) {
	e := echo.New()
	fixed := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	vessel, ok := domain.FindVessel("MSC GULSUN")
	if !ok {
		t.Fatalf("fleet registry is missing MSC GULSUN")
	}

	stub := &stubPositions{
		trackFn: func(ctx context.Context, name string, now time.Time) (*ports.VesselTrack, error) {
			if name != "MSC GULSUN" {
				t.Fatalf("expected unescaped name, got %q", name)
			}
			if !now.Equal(fixed) {
				t.Fatalf("unexpected instant: %v", now)
			}
			return &ports.VesselTrack{
				Vessel:   vessel,
				Position: ports.VesselPosition{Lat: 20.5, Lon: -150.2, Source: ports.PositionSourceSimulated},
			}, nil
		},
	}
	h := NewVesselHandler(stub)
	h.now = func() time.Time { return fixed }

	req := httptest.NewRequest(http.MethodGet, "/v1/vessels/MSC%20GULSUN/position", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("MSC%20GULSUN")

	if err := h.Track(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	got, ok := resp["vessel"].(map[string]any)
	if !ok || got["name"] != "MSC GULSUN" {
		t.Fatalf("unexpected vessel payload: %+v", resp["vessel"])
	}
	pos, ok := resp["position"].(map[string]any)
	if !ok || pos["source"] != ports.PositionSourceSimulated {
		t.Fatalf("unexpected position payload: %+v", resp["position"])
	}
}

func TestVesselHandler_Track_NotFoundPassesThrough(t *testing.T) {
	e := echo.New()
	stub := &stubPositions{
		trackFn: func(ctx context.Context, name string, now time.Time) (*ports.VesselTrack, error) {
			return nil, domain.ErrVesselNotFound
		},
	}
	h := NewVesselHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/vessels/NOPE/position", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("NOPE")

	if err := h.Track(c); !errors.Is(err, domain.ErrVesselNotFound) {
		t.Fatalf("expected ErrVesselNotFound, got %v", err)
	}
}

func TestVesselHandler_RoutePosition_ParsesInstant(t *testing.T) {
	e := echo.New()
	want := time.Date(2026, time.January, 5, 6, 0, 0, 0, time.UTC)

	stub := &stubPositions{
		simulateFn: func(routeName string, now time.Time) (*ports.VesselPosition, error) {
			if routeName != "Asia-Europe" {
				t.Fatalf("unexpected route: %q", routeName)
			}
			if !now.Equal(want) {
				t.Fatalf("expected parsed instant, got %v", now)
			}
			return &ports.VesselPosition{Lat: 41.2, Lon: 60.3, Progress: 0.25}, nil
		},
	}
	h := NewVesselHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/routes/Asia-Europe/position?at=2026-01-05T06:00:00Z", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Asia-Europe")

	if err := h.RoutePosition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["route"] != "Asia-Europe" {
		t.Fatalf("unexpected route: %v", resp["route"])
	}
	pos, ok := resp["position"].(map[string]any)
	if !ok || pos["progress"] != 0.25 {
		t.Fatalf("unexpected position payload: %+v", resp["position"])
	}
}

func TestVesselHandler_RoutePosition_DefaultsToNow(t *testing.T) {
	e := echo.New()
	fixed := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	stub := &stubPositions{
		simulateFn: func(routeName string, now time.Time) (*ports.VesselPosition, error) {
			if !now.Equal(fixed) {
				t.Fatalf("expected injected now, got %v", now)
			}
			return &ports.VesselPosition{}, nil
		},
	}
	h := NewVesselHandler(stub)
	h.now = func() time.Time { return fixed }

	req := httptest.NewRequest(http.MethodGet, "/v1/routes/Trans-Pacific/position", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Trans-Pacific")

	if err := h.RoutePosition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestVesselHandler_RoutePosition_RejectsBadInstant(t *testing.T) {
	e := echo.New()
	h := NewVesselHandler(&stubPositions{
		simulateFn: func(routeName string, now time.Time) (*ports.VesselPosition, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/routes/Asia-Europe/position?at=yesterday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Asia-Europe")

	err := h.RoutePosition(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
