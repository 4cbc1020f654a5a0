package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargosight/tracking-api/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateInput(identifier string, req updateShipmentRequest, actor, idempotencyKey string) (ports.ShipmentUpdateInput, error) {
	in := ports.ShipmentUpdateInput{
		Identifier:     identifier,
		Vendor:         req.Vendor,
		Actor:          actor,
		Reason:         req.Reason,
		IdempotencyKey: idempotencyKey,
		Deltas: ports.FieldDeltas{
			IsRisk: req.IsRisk,
			Note:   req.Note,
		},
	}

	if req.ETA != nil {
		t, err := time.Parse(time.RFC3339, *req.ETA)
		if err != nil {
			return ports.ShipmentUpdateInput{}, fmt.Errorf("eta: %w", err)
		}
		utc := t.UTC()
		in.Deltas.ETA = &utc
	}

	return in, nil
}

// toSearchFilter reads the list query parameters. Unparseable numeric values
// fall back to zero, which the service replaces with its defaults; the status
// value is uppercased here so the canonical-code check downstream is
// case-insensitive for callers.
func toSearchFilter(c echo.Context) ports.SearchFilter {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	risk, _ := strconv.ParseBool(c.QueryParam("risk"))

	return ports.SearchFilter{
		Status:    strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))),
		RiskOnly:  risk,
		Container: strings.TrimSpace(c.QueryParam("container")),
		Limit:     limit,
		Offset:    offset,
	}
}
