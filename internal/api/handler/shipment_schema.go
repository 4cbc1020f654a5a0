package handler

import (
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. For failed resolutions, details carries the per-source attempt
// records.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// --- Request types ---

// updateShipmentRequest is the operator write body. Every field is optional,
// but at least one of eta / is_risk / note must be set; an all-empty body is
// rejected by the service.
type updateShipmentRequest struct {
	ETA    *string `json:"eta"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	IsRisk *bool   `json:"is_risk"`
	Note   *string `json:"note"    validate:"omitempty,max=2000"`
	Reason string  `json:"reason"  validate:"omitempty,max=500"`
	Vendor string  `json:"vendor"  validate:"omitempty,oneof=logitude dpworld tracktrace"`
}

// --- Response envelopes ---
//
// The canonical shipment record and the attempt report are themselves the
// wire contract (producing them is the point of normalization), so responses
// embed the domain types directly; only the envelopes are transport-owned.

type paginationResponse struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type searchShipmentsResponse struct {
	Data       []*domain.CanonicalShipment `json:"data"`
	Pagination paginationResponse          `json:"pagination"`
}

type delayedShipmentsResponse struct {
	ThresholdDays int                     `json:"threshold_days"`
	Count         int                     `json:"count"`
	Data          []ports.DelayedShipment `json:"data"`
}

type auditTrailResponse struct {
	ShipmentID string               `json:"shipment_id"`
	Count      int                  `json:"count"`
	Entries    []*domain.AuditEntry `json:"entries"`
}

type routePositionResponse struct {
	Route    string                `json:"route"`
	Position *ports.VesselPosition `json:"position"`
}
