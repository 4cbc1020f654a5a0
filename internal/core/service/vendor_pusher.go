package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api/metrics"
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

type vendorPusher struct {
	vendors map[string]ports.VendorAdapter
	log     zerolog.Logger
}

// NewVendorPusher returns the VendorPusher executing queued write-throughs.
// It is deliberately decoupled from the update service: the dispatcher only
// needs the adapters, not the local write path.
func NewVendorPusher(vendors map[string]ports.VendorAdapter, log zerolog.Logger) ports.VendorPusher {
	return &vendorPusher{vendors: vendors, log: log}
}

// PushToVendor performs one queued write-through. The local store already
// committed, so failures here are logged and counted, never bubbled back to
// the operator.
func (p *vendorPusher) PushToVendor(ctx context.Context, job ports.VendorPushJob) error {
	adapter, ok := p.vendors[job.Vendor]
	if !ok {
		// The update service validates vendor names before queueing, so this
		// only fires when the configuration changed mid-flight.
		metrics.VendorPushesTotal.WithLabelValues(job.Vendor, "error").Inc()
		p.log.Error().Str("vendor", job.Vendor).Str("identifier", job.Identifier).Msg("push to unconfigured vendor dropped")
		return domain.ErrUnknownSource
	}

	err := adapter.PushUpdate(ctx, job.Identifier, job.Deltas)
	switch {
	case err == nil:
		metrics.VendorPushesTotal.WithLabelValues(job.Vendor, "success").Inc()
		p.log.Info().Str("vendor", job.Vendor).Str("identifier", job.Identifier).Msg("vendor push delivered")
		return nil
	case errors.Is(err, domain.ErrPushNotSupported):
		metrics.VendorPushesTotal.WithLabelValues(job.Vendor, "error").Inc()
		p.log.Warn().Str("vendor", job.Vendor).Str("identifier", job.Identifier).Msg("vendor does not accept updates")
		return err
	default:
		metrics.VendorPushesTotal.WithLabelValues(job.Vendor, "error").Inc()
		p.log.Error().Err(err).Str("vendor", job.Vendor).Str("identifier", job.Identifier).Msg("vendor push failed")
		return err
	}
}
