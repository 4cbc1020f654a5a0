package ports

import (
	"context"
	"time"

	"github.com/cargosight/tracking-api/internal/core/domain"
)

// SearchFilter carries the query parameters for listing locally stored
// shipments.
type SearchFilter struct {
	Status    string // optional: canonical status code
	RiskOnly  bool   // only risk-flagged shipments
	Container string // optional: partial match on container number
	Limit     int    // max rows (capped at 100 by the service)
	Offset    int
}

// FieldDeltas carries the optional field changes of a shipment update.
// Nil fields are left untouched. Note appends to the operator notes rather
// than replacing them.
type FieldDeltas struct {
	ETA    *time.Time `json:"eta,omitempty"`
	IsRisk *bool      `json:"is_risk,omitempty"`
	Note   *string    `json:"note,omitempty"`
}

// IsEmpty reports whether no delta is set.
func (d FieldDeltas) IsEmpty() bool {
	return d.ETA == nil && d.IsRisk == nil && d.Note == nil
}

// LocationCount is one row of the grouped-by-location analytics.
type LocationCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// UpcomingArrival is a shipment due within the analytics lookahead window.
type UpcomingArrival struct {
	Identifier      string     `json:"id"`
	ContainerNumber string     `json:"container,omitempty"`
	ETA             *time.Time `json:"eta,omitempty"`
	Location        string     `json:"location,omitempty"`
}

// AnalyticsSummary aggregates the local store for the analytics endpoint.
type AnalyticsSummary struct {
	TotalShipments   int64             `json:"total_shipments"`
	RiskFlagged      int64             `json:"risk_flagged"`
	StatusBreakdown  map[string]int64  `json:"status_breakdown"`
	ActiveVessels    []string          `json:"active_vessels"`
	TopLocations     []LocationCount   `json:"top_locations"`
	UpcomingArrivals []UpcomingArrival `json:"upcoming_arrivals"`
}

// ShipmentRepository is the local store holding canonical records enriched
// with the locally-owned fields (risk flag, operator notes).
type ShipmentRepository interface {
	// FindByAnyIdentifier checks, in order: primary identifier, container
	// number, master bill of lading. A miss returns domain.ErrShipmentNotFound.
	FindByAnyIdentifier(ctx context.Context, identifier string) (*domain.CanonicalShipment, error)

	// Upsert inserts or replaces a full record. Used by seeding and imports.
	Upsert(ctx context.Context, s *domain.CanonicalShipment) error

	// ApplyWrite applies the non-nil deltas to the record matched by any
	// identifier, stamps updated_at, and returns the record as it was before
	// the write so callers can build audit entries.
	ApplyWrite(ctx context.Context, identifier string, deltas FieldDeltas) (*domain.CanonicalShipment, error)

	// Search returns a page of shipments matching filter and the total count.
	Search(ctx context.Context, filter SearchFilter) ([]*domain.CanonicalShipment, int64, error)

	// FindDelayed returns in-flight shipments whose ETA lies more than the
	// given number of days before now, oldest ETA first.
	FindDelayed(ctx context.Context, days int, now time.Time) ([]*domain.CanonicalShipment, error)

	// Summary aggregates the store: totals, status breakdown, risk count,
	// active vessels, top locations, and arrivals due within seven days.
	Summary(ctx context.Context, now time.Time) (*AnalyticsSummary, error)
}

// AuditRepository persists the operator-change audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListByShipment(ctx context.Context, shipmentID string, limit int) ([]*domain.AuditEntry, error)
}
