package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargosight/tracking-api/internal/core/ports"
)

// AnalyticsHandler serves aggregate views over the local store.
type AnalyticsHandler struct {
	queries ports.QueryService
}

func NewAnalyticsHandler(queries ports.QueryService) *AnalyticsHandler {
	return &AnalyticsHandler{queries: queries}
}

// Summary handles GET /v1/analytics/summary.
//
// @Summary      Aggregate statistics over the local store
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  ports.AnalyticsSummary
// @Router       /v1/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.queries.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
