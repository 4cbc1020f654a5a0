package ports

import (
	"context"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// Source name for the local store in resolution requests and attempt reports.
const SourceLocal = "local"

// Resolution is the successful outcome of a resolve call: the canonical
// record, the source that produced it, and the sources that failed before it.
type Resolution struct {
	Shipment *domain.CanonicalShipment `json:"shipment"`
	Source   string                    `json:"source"`
	Attempts []domain.AdapterAttempt   `json:"attempts,omitempty"`
}

// ResolverService turns an opaque identifier into a canonical shipment by
// trying the local store first and then the configured vendors in priority
// order, stopping at the first success.
type ResolverService interface {
	// Resolve looks the identifier up. An empty preferredSource walks the
	// full chain; SourceLocal or a vendor name restricts the call to that
	// single source with no fallback. Total failure returns
	// *domain.PartialFailureError with one attempt per source tried.
	Resolve(ctx context.Context, identifier, preferredSource string) (*Resolution, error)
}
