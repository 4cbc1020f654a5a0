package ports

import (
	"context"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// SearchResult is one page of locally stored shipments.
type SearchResult struct {
	Items  []*domain.CanonicalShipment `json:"items"`
	Total  int64                       `json:"total"`
	Limit  int                         `json:"limit"`
	Offset int                         `json:"offset"`
}

// DelayedShipment pairs a shipment with how far past its ETA it is.
type DelayedShipment struct {
	Shipment    *domain.CanonicalShipment `json:"shipment"`
	DaysDelayed int                       `json:"days_delayed"`
}

// QueryService serves read-only views over the local store.
type QueryService interface {
	Search(ctx context.Context, filter SearchFilter) (*SearchResult, error)
	Delayed(ctx context.Context, days int) ([]DelayedShipment, error)
	Analytics(ctx context.Context) (*AnalyticsSummary, error)
	AuditTrail(ctx context.Context, identifier string) ([]*domain.AuditEntry, error)
}
