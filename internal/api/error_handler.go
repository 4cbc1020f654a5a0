package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// is populated only for resolution failures, where it carries the per-source
// attempt records so callers can see what was tried and why each source failed.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"code", "message", "details"?}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := resolveError(err, log, c)
		_ = c.JSON(body.Code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) errorResponse {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorResponse{Code: he.Code, Message: fmt.Sprintf("%v", he.Message)}
	}

	// Every source in the resolution chain failed. "Nobody has this shipment"
	// is the caller's problem; "the vendors are down" is ours.
	var partial *domain.PartialFailureError
	if errors.As(err, &partial) {
		code := http.StatusBadGateway
		if partial.DataMissing() {
			code = http.StatusNotFound
		}
		return errorResponse{Code: code, Message: partial.Error(), Details: partial.Attempts}
	}

	var (
		unknownRoute *domain.UnknownRouteError
		vendorReject *domain.ClientError
		exhausted    *domain.RetriesExhaustedError
		badPayload   *domain.NormalizationError
	)

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrShipmentNotFound):
		return errorResponse{Code: http.StatusNotFound, Message: "shipment not found"}
	case errors.Is(err, domain.ErrVesselNotFound):
		return errorResponse{Code: http.StatusNotFound, Message: err.Error()}
	case errors.As(err, &unknownRoute):
		return errorResponse{Code: http.StatusNotFound, Message: unknownRoute.Error()}
	case errors.Is(err, domain.ErrUnknownSource),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyUpdate):
		return errorResponse{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicateUpdate):
		return errorResponse{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, domain.ErrPushNotSupported):
		return errorResponse{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	case errors.As(err, &vendorReject), errors.As(err, &exhausted), errors.As(err, &badPayload):
		// A single named source was asked for and failed; no fallback ran.
		return errorResponse{Code: http.StatusBadGateway, Message: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return errorResponse{Code: http.StatusInternalServerError, Message: "internal server error"}
}
