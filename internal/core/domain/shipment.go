package domain

import "time"

// StatusCode is the canonical, vendor-agnostic shipment status. Every
// vendor-specific status string maps onto exactly one of these values; a
// string a translation table does not know becomes StatusUnknown, never an
// error.
type StatusCode string

const (
	StatusBooked      StatusCode = "BOOKED"
	StatusInTransit   StatusCode = "IN_TRANSIT"
	StatusAtPort      StatusCode = "AT_PORT"
	StatusCustomsHold StatusCode = "CUSTOMS_HOLD"
	StatusDelayed     StatusCode = "DELAYED"
	StatusDelivered   StatusCode = "DELIVERED"
	StatusUnknown     StatusCode = "UNKNOWN"
)

// statusCodes is the closed canonical set.
var statusCodes = map[StatusCode]struct{}{
	StatusBooked:      {},
	StatusInTransit:   {},
	StatusAtPort:      {},
	StatusCustomsHold: {},
	StatusDelayed:     {},
	StatusDelivered:   {},
	StatusUnknown:     {},
}

// IsValid reports whether s belongs to the canonical set.
func (s StatusCode) IsValid() bool {
	_, ok := statusCodes[s]
	return ok
}

// activeStatuses are the codes a shipment can be delayed in. Delivered and
// booked-but-not-moving shipments are excluded from delay queries.
var activeStatuses = []StatusCode{StatusInTransit, StatusDelayed, StatusAtPort, StatusCustomsHold}

// ActiveStatuses returns the status codes considered in-flight.
func ActiveStatuses() []StatusCode {
	out := make([]StatusCode, len(activeStatuses))
	copy(out, activeStatuses)
	return out
}

// Location is the point a shipment was last reported at.
type Location struct {
	Lat  *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty" bson:"lon,omitempty"`
	Name *string  `json:"name,omitempty" bson:"name,omitempty"`
}

// TrackingInfo groups the transport details of a shipment.
type TrackingInfo struct {
	ContainerNumber *string  `json:"container,omitempty" bson:"container,omitempty"`
	VesselName      *string  `json:"vessel,omitempty" bson:"vessel,omitempty"`
	VoyageNumber    *string  `json:"voyage,omitempty" bson:"voyage,omitempty"`
	Location        Location `json:"location" bson:"location"`
}

// Schedule holds estimated departure and arrival times.
type Schedule struct {
	EstimatedDeparture *time.Time `json:"etd,omitempty" bson:"etd,omitempty"`
	EstimatedArrival   *time.Time `json:"eta,omitempty" bson:"eta,omitempty"`
}

// StatusInfo pairs the canonical code with the source's free-text description.
type StatusInfo struct {
	Code        StatusCode `json:"code" bson:"code"`
	Description *string    `json:"description,omitempty" bson:"description,omitempty"`
}

// Flags carries the locally-owned fields. External adapters never populate
// these; they are merged in only on the local-store path.
type Flags struct {
	IsRisk        bool    `json:"is_risk" bson:"is_risk"`
	OperatorNotes *string `json:"operator_notes,omitempty" bson:"operator_notes,omitempty"`
}

// Metadata holds document references and record timestamps.
type Metadata struct {
	MasterBillOfLading *string    `json:"master_bill,omitempty" bson:"master_bill,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CanonicalShipment is the vendor-agnostic record every source converges to.
// Identifier and Status.Code are the only mandatory fields; a record missing
// location, schedule, or vessel data is still valid. Instances are value
// objects: every resolution produces a fresh one, so concurrent callers never
// share mutable state.
type CanonicalShipment struct {
	Identifier string       `json:"id" bson:"_id"`
	Tracking   TrackingInfo `json:"tracking" bson:"tracking"`
	Schedule   Schedule     `json:"schedule" bson:"schedule"`
	Status     StatusInfo   `json:"status" bson:"status"`
	Flags      Flags        `json:"flags" bson:"flags"`
	Metadata   Metadata     `json:"metadata" bson:"metadata"`
	Source     string       `json:"source,omitempty" bson:"source,omitempty"`
}
