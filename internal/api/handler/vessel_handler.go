package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargosight/tracking-api/internal/core/ports"
)

// VesselHandler serves vessel and route position endpoints.
type VesselHandler struct {
	positions ports.PositionService

	now func() time.Time // injectable for tests
}

func NewVesselHandler(positions ports.PositionService) *VesselHandler {
	return &VesselHandler{positions: positions, now: time.Now}
}

// Track handles GET /v1/vessels/:name/position.
//
// @Summary      Current position of a fleet vessel
// @Description  Looks the vessel up by exact or partial name and returns a live AIS fix when a feed is configured, a simulated position otherwise.
// @Tags         vessels
// @Produce      json
// @Param        name  path      string  true  "Vessel name, exact or partial (e.g. GULSUN)"
// @Success      200   {object}  ports.VesselTrack
// @Failure      404   {object}  errorResponse
// @Router       /v1/vessels/{name}/position [get]
func (h *VesselHandler) Track(c echo.Context) error {
	track, err := h.positions.TrackVessel(c.Request().Context(), pathName(c), h.now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, track)
}

// RoutePosition handles GET /v1/routes/:name/position.
//
// @Summary      Simulated position along a static shipping lane
// @Tags         vessels
// @Produce      json
// @Param        name  path      string  true   "Route name (e.g. Asia-Europe)"
// @Param        at    query     string  false  "Instant to simulate, RFC3339 (default: now)"
// @Success      200   {object}  routePositionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/routes/{name}/position [get]
func (h *VesselHandler) RoutePosition(c echo.Context) error {
	at := h.now()
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "at must be an RFC3339 timestamp")
		}
		at = parsed
	}

	name := pathName(c)
	pos, err := h.positions.SimulateRoute(name, at)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routePositionResponse{Route: name, Position: pos})
}

// pathName returns the :name parameter with percent-encoding undone, since
// vessel and route names contain spaces.
func pathName(c echo.Context) string {
	name := c.Param("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}
