package domain

import "errors"

// FailureKind classifies why a source failed during a resolution call.
type FailureKind string

const (
	FailureNone          FailureKind = "none"
	FailureNoData        FailureKind = "no_data"
	FailureClientError   FailureKind = "client_error"
	FailureExhausted     FailureKind = "exhausted_retries"
	FailureNormalization FailureKind = "normalization_error"
	FailureUnexpected    FailureKind = "unexpected"
)

// AdapterAttempt records the outcome of one source during a resolution call.
// Attempts live only for the duration of the call; they are never persisted.
type AdapterAttempt struct {
	Source string      `json:"source"`
	OK     bool        `json:"ok"`
	Kind   FailureKind `json:"kind,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

// ClassifyFailure maps an error from a resolution source onto a FailureKind.
func ClassifyFailure(err error) FailureKind {
	var (
		clientErr  *ClientError
		exhausted  *RetriesExhaustedError
		badPayload *NormalizationError
	)
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrShipmentNotFound):
		return FailureNoData
	case errors.As(err, &clientErr):
		return FailureClientError
	case errors.As(err, &exhausted):
		return FailureExhausted
	case errors.As(err, &badPayload):
		return FailureNormalization
	default:
		return FailureUnexpected
	}
}

// NewAttempt builds the attempt record for a failed source.
func NewAttempt(source string, err error) AdapterAttempt {
	a := AdapterAttempt{Source: source, Kind: ClassifyFailure(err)}
	if err != nil {
		a.Detail = err.Error()
	}
	a.OK = a.Kind == FailureNone
	return a
}
