package domain

import (
	"errors"
	"fmt"
)

var (
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrVesselNotFound   = errors.New("vessel not found")
	ErrUnknownSource    = errors.New("unknown resolution source")
	ErrInvalidStatus    = errors.New("unknown status code")
	ErrPushNotSupported = errors.New("vendor does not accept updates")
	ErrDuplicateUpdate  = errors.New("duplicate update")
	ErrEmptyUpdate      = errors.New("update carries no field changes")
)

// ClientError is a non-retryable 4xx rejection from a vendor API: the request
// itself (or its credentials) is the problem, so retrying cannot help.
type ClientError struct {
	Vendor string
	Status int
	Body   string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: client error %d: %s", e.Vendor, e.Status, e.Body)
}

// RetriesExhaustedError reports a transient vendor condition (5xx, timeout,
// connection failure) that survived every configured attempt. Last carries
// the final underlying error for diagnostics.
type RetriesExhaustedError struct {
	Vendor   string
	Attempts int
	Last     error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("%s: unavailable after %d attempts: %v", e.Vendor, e.Attempts, e.Last)
}

func (e *RetriesExhaustedError) Unwrap() error { return e.Last }

// NormalizationError reports a vendor payload the normalizer could not make
// sense of. It always surfaces to the caller; a structurally broken payload
// is never folded into a partial record.
type NormalizationError struct {
	Vendor string
	Cause  error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("%s: cannot normalize payload: %v", e.Vendor, e.Cause)
}

func (e *NormalizationError) Unwrap() error { return e.Cause }

// UnknownRouteError is returned by the position simulator for a route name
// absent from the static lane table.
type UnknownRouteError struct {
	Name string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("unknown route %q", e.Name)
}

// PartialFailureError is returned when every source in the resolution chain
// failed or had no data. Attempts preserves the order sources were tried in,
// one entry per source, so the caller can tell "nobody has this shipment"
// apart from "the vendors are down".
type PartialFailureError struct {
	Identifier string
	Attempts   []AdapterAttempt
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("no source could resolve %q (%d attempted)", e.Identifier, len(e.Attempts))
}

// DataMissing reports whether every attempt failed for lack of data (local
// miss or vendor 4xx) rather than infrastructure trouble. Callers map this to
// "not found" instead of "service degraded".
func (e *PartialFailureError) DataMissing() bool {
	for _, a := range e.Attempts {
		if a.Kind != FailureNoData && a.Kind != FailureClientError {
			return false
		}
	}
	return true
}
