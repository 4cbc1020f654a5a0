package ports

import (
	"context"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// VendorAdapter is implemented once per external tracking vendor. An adapter
// owns one vendor connection (base URL plus credentials fixed at
// construction) and hides that vendor's wire format behind the canonical
// schema.
type VendorAdapter interface {
	// Name returns the vendor's configuration name (e.g. "logitude").
	Name() string

	// FetchShipment retrieves one shipment record from the vendor and
	// normalizes it. Transport failures are retried internally; what comes
	// back is either a canonical record or a classified error
	// (domain.ClientError, domain.RetriesExhaustedError,
	// domain.NormalizationError).
	FetchShipment(ctx context.Context, identifier string) (*domain.CanonicalShipment, error)

	// PushUpdate writes field deltas through to the vendor. Vendors without
	// a write API return domain.ErrPushNotSupported.
	PushUpdate(ctx context.Context, identifier string, deltas FieldDeltas) error
}

// VesselFeed provides live AIS position fixes. It is only wired when a feed
// API key is configured; its absence switches vessel tracking to the
// simulator, which is configuration, not an error.
type VesselFeed interface {
	FetchPosition(ctx context.Context, imo string) (*VesselPosition, error)
}
