package ports

import "context"

// ShipmentUpdateInput carries one operator write.
type ShipmentUpdateInput struct {
	Identifier     string
	Deltas         FieldDeltas
	Vendor         string // optional write-through target
	Actor          string // operator identity from the auth layer
	Reason         string // free-text justification, stored in the audit trail
	IdempotencyKey string // optional; duplicates within the window are rejected
}

// UpdateResult reports what the write path did.
type UpdateResult struct {
	Identifier       string `json:"id"`
	Updated          bool   `json:"updated"`
	VendorPushQueued bool   `json:"vendor_push_queued"`
}

// VendorPushJob is one queued write-through to a vendor API.
type VendorPushJob struct {
	Identifier string
	Vendor     string
	Deltas     FieldDeltas
}

// UpdateService owns the operator write path. The local store write commits
// synchronously; the vendor write-through is a best-effort side call queued
// for a dispatcher worker, never blocking the local write.
type UpdateService interface {
	Update(ctx context.Context, in ShipmentUpdateInput) (*UpdateResult, error)
}

// VendorPusher performs one queued write-through. Called by dispatcher
// workers; a failed push is logged and counted, never retried beyond the
// adapter's own retry budget.
type VendorPusher interface {
	PushToVendor(ctx context.Context, job VendorPushJob) error
}

// PushQueue accepts vendor push jobs for asynchronous execution.
type PushQueue interface {
	Enqueue(job VendorPushJob)
}
