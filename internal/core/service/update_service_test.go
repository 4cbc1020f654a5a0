package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDeduper struct {
	seen    bool
	err     error
	entries []string
}

func (d *stubDeduper) Seen(_ context.Context, identifier, fingerprint string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	d.entries = append(d.entries, identifier+":"+fingerprint)
	return d.seen, nil
}

type stubQueue struct {
	jobs []ports.VendorPushJob
}

func (q *stubQueue) Enqueue(job ports.VendorPushJob) { q.jobs = append(q.jobs, job) }

type stubAuditRepo struct {
	insertErr error
	inserted  []*domain.AuditEntry
	listOut   []*domain.AuditEntry
	listErr   error
	lastID    string
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, entry)
	return nil
}

func (r *stubAuditRepo) ListByShipment(_ context.Context, shipmentID string, _ int) ([]*domain.AuditEntry, error) {
	r.lastID = shipmentID
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listOut, nil
}

type updateFixture struct {
	repo  *stubShipmentRepo
	audit *stubAuditRepo
	dedup *stubDeduper
	queue *stubQueue
	svc   ports.UpdateService
}

func newUpdateFixture(vendors ...ports.VendorAdapter) *updateFixture {
	f := &updateFixture{
		repo:  newStubShipmentRepo(),
		audit: &stubAuditRepo{},
		dedup: &stubDeduper{},
		queue: &stubQueue{},
	}
	byName := map[string]ports.VendorAdapter{}
	for _, v := range vendors {
		byName[v.Name()] = v
	}
	f.svc = NewUpdateService(f.repo, f.audit, f.dedup, f.queue, byName, zerolog.Nop())
	f.svc.(*updateService).now = func() time.Time {
		return time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	}
	return f
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUpdateService_Update_AppliesAndAudits(t *testing.T) {
	f := newUpdateFixture()
	oldETA := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	s := canonical("JOB-1")
	s.Schedule.EstimatedArrival = &oldETA
	f.repo.records["JOB-1"] = s

	newETA := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	risk := true
	note := "rerouted around storm"
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{ETA: &newETA, IsRisk: &risk, Note: &note},
		Actor:      "ops-arodriguez",
		Reason:     "typhoon warning on original lane",
	})

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !res.Updated || res.VendorPushQueued {
		t.Errorf("result = %+v, want updated without vendor push", res)
	}

	stored := f.repo.records["JOB-1"]
	if stored.Schedule.EstimatedArrival == nil || !stored.Schedule.EstimatedArrival.Equal(newETA) {
		t.Errorf("stored ETA = %v, want %v", stored.Schedule.EstimatedArrival, newETA)
	}
	if !stored.Flags.IsRisk {
		t.Error("risk flag not applied")
	}
	if stored.Flags.OperatorNotes == nil ||
		!strings.Contains(*stored.Flags.OperatorNotes, "ops-arodriguez") ||
		!strings.Contains(*stored.Flags.OperatorNotes, "rerouted around storm") {
		t.Errorf("notes = %v, want attributed note line", stored.Flags.OperatorNotes)
	}

	if len(f.audit.inserted) != 3 {
		t.Fatalf("audit entries = %d, want 3", len(f.audit.inserted))
	}
	byAction := map[string]*domain.AuditEntry{}
	for _, e := range f.audit.inserted {
		byAction[e.Action] = e
		if e.ShipmentID != "JOB-1" || e.Actor != "ops-arodriguez" || e.Reason == "" {
			t.Errorf("audit entry %+v missing identity fields", e)
		}
	}
	etaEntry := byAction[domain.AuditUpdateETA]
	if etaEntry == nil || etaEntry.OldValue != "2026-01-15T00:00:00Z" || etaEntry.NewValue != "2026-01-20T00:00:00Z" {
		t.Errorf("UPDATE_ETA entry = %+v", etaEntry)
	}
	riskEntry := byAction[domain.AuditSetRiskFlag]
	if riskEntry == nil || riskEntry.OldValue != "false" || riskEntry.NewValue != "true" {
		t.Errorf("SET_RISK_FLAG entry = %+v", riskEntry)
	}
	if byAction[domain.AuditAddNote] == nil {
		t.Error("ADD_NOTE entry missing")
	}

	if len(f.dedup.entries) != 1 {
		t.Errorf("dedup fingerprints recorded = %d, want 1", len(f.dedup.entries))
	}
}

func TestUpdateService_Update_EmptyDeltas(t *testing.T) {
	f := newUpdateFixture()
	_, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{Identifier: "JOB-1"})
	if !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("error = %v, want ErrEmptyUpdate", err)
	}
}

func TestUpdateService_Update_DuplicateRejected(t *testing.T) {
	f := newUpdateFixture()
	f.repo.records["JOB-1"] = canonical("JOB-1")
	f.dedup.seen = true

	risk := true
	_, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier:     "JOB-1",
		Deltas:         ports.FieldDeltas{IsRisk: &risk},
		IdempotencyKey: "req-42",
	})
	if !errors.Is(err, domain.ErrDuplicateUpdate) {
		t.Fatalf("error = %v, want ErrDuplicateUpdate", err)
	}
	if len(f.repo.applied) != 0 {
		t.Error("duplicate update reached the store")
	}
}

func TestUpdateService_Update_DedupFailureProceeds(t *testing.T) {
	f := newUpdateFixture()
	f.repo.records["JOB-1"] = canonical("JOB-1")
	f.dedup.err = errors.New("redis: connection refused")

	risk := true
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
	})
	if err != nil {
		t.Fatalf("expected write despite dedup outage, got: %v", err)
	}
	if !res.Updated {
		t.Error("result not marked updated")
	}
}

func TestUpdateService_Update_QueuesVendorPush(t *testing.T) {
	adapter := &stubAdapter{name: "logitude"}
	f := newUpdateFixture(adapter)
	f.repo.records["JOB-1"] = canonical("JOB-1")

	eta := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	note := "confirm with carrier"
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{ETA: &eta, Note: &note},
		Vendor:     "logitude",
		Actor:      "ops-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !res.VendorPushQueued {
		t.Error("VendorPushQueued = false")
	}
	if len(f.queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(f.queue.jobs))
	}
	job := f.queue.jobs[0]
	if job.Vendor != "logitude" || job.Identifier != "JOB-1" {
		t.Errorf("job = %+v", job)
	}
	if job.Deltas.Note == nil || *job.Deltas.Note != "confirm with carrier" {
		t.Errorf("job note = %v, want the raw text, not the attributed store line", job.Deltas.Note)
	}
	if job.Deltas.IsRisk != nil {
		t.Error("risk flag leaked into the push job")
	}
}

func TestUpdateService_Update_RiskOnlyChangeIsNotPushed(t *testing.T) {
	adapter := &stubAdapter{name: "logitude"}
	f := newUpdateFixture(adapter)
	f.repo.records["JOB-1"] = canonical("JOB-1")

	risk := true
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
		Vendor:     "logitude",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.VendorPushQueued || len(f.queue.jobs) != 0 {
		t.Error("risk-only change must never reach a vendor")
	}
}

func TestUpdateService_Update_UnknownVendor(t *testing.T) {
	f := newUpdateFixture()
	risk := true
	_, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
		Vendor:     "acme",
	})
	if !errors.Is(err, domain.ErrUnknownSource) {
		t.Fatalf("error = %v, want ErrUnknownSource", err)
	}
}

func TestUpdateService_Update_ShipmentNotFound(t *testing.T) {
	f := newUpdateFixture()
	risk := true
	_, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "GHOST",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
	})
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("error = %v, want ErrShipmentNotFound", err)
	}
	if len(f.audit.inserted) != 0 {
		t.Error("audit written for a failed update")
	}
}

func TestUpdateService_Update_AuditFailureIsNonFatal(t *testing.T) {
	f := newUpdateFixture()
	f.repo.records["JOB-1"] = canonical("JOB-1")
	f.audit.insertErr = errors.New("mongo: write concern timeout")

	risk := true
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "JOB-1",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
	})
	if err != nil {
		t.Fatalf("audit failure must not fail the write, got: %v", err)
	}
	if !res.Updated {
		t.Error("result not marked updated")
	}
}

func TestUpdateService_Update_ResolvesAliasToCanonicalID(t *testing.T) {
	f := newUpdateFixture()
	s := canonical("JOB-1")
	container := "MSCU1234567"
	s.Tracking.ContainerNumber = &container
	f.repo.records["JOB-1"] = s

	risk := true
	res, err := f.svc.Update(context.Background(), ports.ShipmentUpdateInput{
		Identifier: "MSCU1234567",
		Deltas:     ports.FieldDeltas{IsRisk: &risk},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Identifier != "JOB-1" {
		t.Errorf("result Identifier = %q, want canonical id", res.Identifier)
	}
}

// ---------------------------------------------------------------------------
// VendorPusher
// ---------------------------------------------------------------------------

func TestVendorPusher_PushToVendor(t *testing.T) {
	adapter := &stubAdapter{name: "logitude"}
	pusher := NewVendorPusher(map[string]ports.VendorAdapter{"logitude": adapter}, zerolog.Nop())

	eta := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	err := pusher.PushToVendor(context.Background(), ports.VendorPushJob{
		Identifier: "JOB-1",
		Vendor:     "logitude",
		Deltas:     ports.FieldDeltas{ETA: &eta},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(adapter.pushed) != 1 {
		t.Errorf("adapter pushes = %d, want 1", len(adapter.pushed))
	}
}

func TestVendorPusher_PushToVendor_ReadOnlyVendor(t *testing.T) {
	adapter := &stubAdapter{name: "tracktrace", pushErr: domain.ErrPushNotSupported}
	pusher := NewVendorPusher(map[string]ports.VendorAdapter{"tracktrace": adapter}, zerolog.Nop())

	note := "n"
	err := pusher.PushToVendor(context.Background(), ports.VendorPushJob{
		Identifier: "TT-1",
		Vendor:     "tracktrace",
		Deltas:     ports.FieldDeltas{Note: &note},
	})
	if !errors.Is(err, domain.ErrPushNotSupported) {
		t.Fatalf("error = %v, want ErrPushNotSupported", err)
	}
}

func TestVendorPusher_PushToVendor_UnknownVendor(t *testing.T) {
	pusher := NewVendorPusher(map[string]ports.VendorAdapter{}, zerolog.Nop())
	err := pusher.PushToVendor(context.Background(), ports.VendorPushJob{Identifier: "X", Vendor: "acme"})
	if !errors.Is(err, domain.ErrUnknownSource) {
		t.Fatalf("error = %v, want ErrUnknownSource", err)
	}
}
