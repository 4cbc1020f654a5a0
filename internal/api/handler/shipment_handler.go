package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargosight/tracking-api/internal/core/ports"
)

// ShipmentHandler serves the resolution, query, and operator write endpoints.
type ShipmentHandler struct {
	resolver ports.ResolverService
	updates  ports.UpdateService
	queries  ports.QueryService
}

func NewShipmentHandler(resolver ports.ResolverService, updates ports.UpdateService, queries ports.QueryService) *ShipmentHandler {
	return &ShipmentHandler{resolver: resolver, updates: updates, queries: queries}
}

// Resolve handles GET /v1/shipments/:identifier.
//
// @Summary      Resolve a shipment identifier to its canonical record
// @Description  Checks the local store, then the configured vendors in priority order, returning the first hit. Pass ?source= to query a single source with no fallback.
// @Tags         shipments
// @Produce      json
// @Param        identifier  path      string  true   "Shipment identifier, container number, or master bill of lading"
// @Param        source      query     string  false  "Restrict to one source: local, logitude, dpworld, tracktrace"
// @Success      200         {object}  ports.Resolution
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      502         {object}  errorResponse
// @Router       /v1/shipments/{identifier} [get]
func (h *ShipmentHandler) Resolve(c echo.Context) error {
	res, err := h.resolver.Resolve(c.Request().Context(), c.Param("identifier"), c.QueryParam("source"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Update handles PATCH /v1/shipments/:identifier.
//
// @Summary      Apply an operator update to a shipment
// @Description  Updates ETA, risk flag, and/or appends an operator note. The local write commits synchronously and is audited; when a vendor is named, the change is queued for asynchronous write-through.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        identifier       path      string                 true   "Shipment identifier, container number, or master bill of lading"
// @Param        Idempotency-Key  header    string                 false  "Idempotency key; duplicate submissions within 1h are rejected"
// @Param        body             body      updateShipmentRequest  true   "Field deltas"
// @Success      200              {object}  ports.UpdateResult
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/shipments/{identifier} [patch]
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	in, err := toUpdateInput(c.Param("identifier"), req, actor, c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.updates.Update(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Search handles GET /v1/shipments.
//
// @Summary      List locally stored shipments
// @Tags         shipments
// @Produce      json
// @Param        status     query     string  false  "Canonical status code (e.g. IN_TRANSIT)"
// @Param        risk       query     bool    false  "Only risk-flagged shipments"
// @Param        container  query     string  false  "Partial container number match"
// @Param        limit      query     int     false  "Page size (default 20, max 100)"
// @Param        offset     query     int     false  "Rows to skip"
// @Success      200        {object}  searchShipmentsResponse
// @Failure      400        {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) Search(c echo.Context) error {
	result, err := h.queries.Search(c.Request().Context(), toSearchFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchShipmentsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:  result.Total,
			Limit:  result.Limit,
			Offset: result.Offset,
		},
	})
}

// Delayed handles GET /v1/shipments/delayed.
//
// @Summary      List in-flight shipments past their ETA
// @Tags         shipments
// @Produce      json
// @Param        days  query     int  false  "Minimum days past ETA (default 1)"
// @Success      200   {object}  delayedShipmentsResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/shipments/delayed [get]
func (h *ShipmentHandler) Delayed(c echo.Context) error {
	days := 1
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a non-negative integer")
		}
		days = parsed
	}

	items, err := h.queries.Delayed(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, delayedShipmentsResponse{
		ThresholdDays: days,
		Count:         len(items),
		Data:          items,
	})
}

// AuditTrail handles GET /v1/shipments/:identifier/audit.
//
// @Summary      List the operator changes applied to a shipment
// @Tags         shipments
// @Produce      json
// @Param        identifier  path      string  true  "Shipment identifier, container number, or master bill of lading"
// @Success      200         {object}  auditTrailResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/shipments/{identifier}/audit [get]
func (h *ShipmentHandler) AuditTrail(c echo.Context) error {
	identifier := c.Param("identifier")
	entries, err := h.queries.AuditTrail(c.Request().Context(), identifier)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditTrailResponse{
		ShipmentID: identifier,
		Count:      len(entries),
		Entries:    entries,
	})
}
