package domain

import "time"

// Audit actions recorded for operator writes.
const (
	AuditUpdateETA   = "UPDATE_ETA"
	AuditSetRiskFlag = "SET_RISK_FLAG"
	AuditAddNote     = "ADD_NOTE"
)

// AuditEntry records one operator change applied to a locally stored
// shipment. Write-throughs to vendors are not audited here; only the local
// store is authoritative for these fields.
type AuditEntry struct {
	ID         string    `json:"id" bson:"_id"`
	ShipmentID string    `json:"shipment_id" bson:"shipment_id"`
	Action     string    `json:"action" bson:"action"`
	Field      string    `json:"field,omitempty" bson:"field,omitempty"`
	OldValue   string    `json:"old_value,omitempty" bson:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty" bson:"new_value,omitempty"`
	Reason     string    `json:"reason,omitempty" bson:"reason,omitempty"`
	Actor      string    `json:"actor,omitempty" bson:"actor,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
