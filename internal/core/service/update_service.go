package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api/metrics"
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

// Deduper abstracts the idempotency store (Redis). Seen atomically records
// the fingerprint and reports whether it was already present.
type Deduper interface {
	Seen(ctx context.Context, identifier, fingerprint string) (bool, error)
}

type updateService struct {
	repo    ports.ShipmentRepository
	audit   ports.AuditRepository
	dedup   Deduper
	queue   ports.PushQueue
	vendors map[string]ports.VendorAdapter
	log     zerolog.Logger
	now     func() time.Time
}

// NewUpdateService returns the UpdateService owning the operator write path.
// vendors is keyed by adapter name and is used both to validate write-through
// targets and to reject pushes to read-only vendors early.
func NewUpdateService(
	repo ports.ShipmentRepository,
	audit ports.AuditRepository,
	dedup Deduper,
	queue ports.PushQueue,
	vendors map[string]ports.VendorAdapter,
	log zerolog.Logger,
) ports.UpdateService {
	return &updateService{
		repo:    repo,
		audit:   audit,
		dedup:   dedup,
		queue:   queue,
		vendors: vendors,
		log:     log,
		now:     time.Now,
	}
}

// Update applies operator field changes to the local store, records the
// audit trail, and queues an optional vendor write-through.
func (s *updateService) Update(ctx context.Context, in ports.ShipmentUpdateInput) (*ports.UpdateResult, error) {
	if in.Deltas.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	if in.Vendor != "" {
		if _, ok := s.vendors[in.Vendor]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, in.Vendor)
		}
	}

	// 1. Idempotency check. Duplicates are rejected, but a degraded dedup
	// store must never block writes.
	fingerprint := in.IdempotencyKey
	if fingerprint == "" {
		fingerprint = deltaFingerprint(in)
	}
	seen, err := s.dedup.Seen(ctx, in.Identifier, fingerprint)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", in.Identifier).Msg("dedup check failed, applying anyway")
	} else if seen {
		metrics.UpdatesDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("identifier", in.Identifier).Str("fingerprint", fingerprint).Msg("duplicate update rejected")
		return nil, domain.ErrDuplicateUpdate
	} else {
		metrics.UpdatesDedupTotal.WithLabelValues("miss").Inc()
	}

	// 2. Notes append as attributed, timestamped lines; the raw text is kept
	// aside for the vendor push.
	now := s.now().UTC()
	deltas := in.Deltas
	if deltas.Note != nil {
		line := fmt.Sprintf("[%s] %s: %s", now.Format(time.RFC3339), in.Actor, *deltas.Note)
		deltas.Note = &line
	}

	// 3. Commit to the local store. ApplyWrite returns the pre-image so the
	// audit entries can record what each field changed from.
	before, err := s.repo.ApplyWrite(ctx, in.Identifier, deltas)
	if err != nil {
		return nil, err
	}

	// 4. Audit trail, one entry per changed field (non-fatal on failure).
	for _, entry := range s.auditEntries(in, deltas, before, now) {
		if err := s.audit.Insert(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("identifier", before.Identifier).Str("action", entry.Action).Msg("failed to insert audit entry")
		}
	}

	// 5. Queue the vendor write-through. Only ETA and note travel; the risk
	// flag is local-only. The queue hand-off never blocks the local write.
	result := &ports.UpdateResult{Identifier: before.Identifier, Updated: true}
	if in.Vendor != "" && (in.Deltas.ETA != nil || in.Deltas.Note != nil) {
		s.queue.Enqueue(ports.VendorPushJob{
			Identifier: before.Identifier,
			Vendor:     in.Vendor,
			Deltas:     ports.FieldDeltas{ETA: in.Deltas.ETA, Note: in.Deltas.Note},
		})
		result.VendorPushQueued = true
	}

	s.log.Info().
		Str("identifier", before.Identifier).
		Str("actor", in.Actor).
		Bool("push_queued", result.VendorPushQueued).
		Msg("shipment updated")

	return result, nil
}

// auditEntries builds one entry per non-nil delta against the pre-image.
func (s *updateService) auditEntries(in ports.ShipmentUpdateInput, applied ports.FieldDeltas, before *domain.CanonicalShipment, now time.Time) []*domain.AuditEntry {
	base := func(action, field, oldValue, newValue string) *domain.AuditEntry {
		return &domain.AuditEntry{
			ID:         uuid.NewString(),
			ShipmentID: before.Identifier,
			Action:     action,
			Field:      field,
			OldValue:   oldValue,
			NewValue:   newValue,
			Reason:     in.Reason,
			Actor:      in.Actor,
			CreatedAt:  now,
		}
	}

	var entries []*domain.AuditEntry
	if in.Deltas.ETA != nil {
		oldETA := ""
		if before.Schedule.EstimatedArrival != nil {
			oldETA = before.Schedule.EstimatedArrival.UTC().Format(time.RFC3339)
		}
		entries = append(entries, base(domain.AuditUpdateETA, "schedule.eta", oldETA, in.Deltas.ETA.UTC().Format(time.RFC3339)))
	}
	if in.Deltas.IsRisk != nil {
		entries = append(entries, base(domain.AuditSetRiskFlag, "flags.is_risk",
			strconv.FormatBool(before.Flags.IsRisk), strconv.FormatBool(*in.Deltas.IsRisk)))
	}
	if applied.Note != nil {
		entries = append(entries, base(domain.AuditAddNote, "flags.operator_notes", "", *applied.Note))
	}
	return entries
}

// deltaFingerprint derives the idempotency fingerprint for callers that do
// not send an Idempotency-Key: identical payloads for the same shipment
// within the dedup window count as retries of one logical update.
func deltaFingerprint(in ports.ShipmentUpdateInput) string {
	payload, _ := json.Marshal(in.Deltas)
	h := sha1.Sum([]byte(in.Identifier + "|" + in.Vendor + "|" + string(payload)))
	return hex.EncodeToString(h[:])
}
