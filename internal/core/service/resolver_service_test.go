package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	records map[string]*domain.CanonicalShipment

	findErr  error
	applyErr error
	applied  []ports.FieldDeltas

	searchItems []*domain.CanonicalShipment
	searchTotal int64
	searchErr   error
	lastFilter  ports.SearchFilter

	delayedItems []*domain.CanonicalShipment
	delayedErr   error
	lastDays     int

	summary    *ports.AnalyticsSummary
	summaryErr error
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{records: map[string]*domain.CanonicalShipment{}}
}

func (r *stubShipmentRepo) match(identifier string) *domain.CanonicalShipment {
	for _, s := range r.records {
		if s.Identifier == identifier {
			return s
		}
		if s.Tracking.ContainerNumber != nil && *s.Tracking.ContainerNumber == identifier {
			return s
		}
		if s.Metadata.MasterBillOfLading != nil && *s.Metadata.MasterBillOfLading == identifier {
			return s
		}
	}
	return nil
}

func (r *stubShipmentRepo) FindByAnyIdentifier(_ context.Context, identifier string) (*domain.CanonicalShipment, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if s := r.match(identifier); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) Upsert(_ context.Context, s *domain.CanonicalShipment) error {
	cp := *s
	r.records[s.Identifier] = &cp
	return nil
}

func (r *stubShipmentRepo) ApplyWrite(_ context.Context, identifier string, deltas ports.FieldDeltas) (*domain.CanonicalShipment, error) {
	if r.applyErr != nil {
		return nil, r.applyErr
	}
	s := r.match(identifier)
	if s == nil {
		return nil, domain.ErrShipmentNotFound
	}
	before := *s
	if deltas.ETA != nil {
		eta := *deltas.ETA
		s.Schedule.EstimatedArrival = &eta
	}
	if deltas.IsRisk != nil {
		s.Flags.IsRisk = *deltas.IsRisk
	}
	if deltas.Note != nil {
		line := *deltas.Note
		if s.Flags.OperatorNotes != nil {
			line = *s.Flags.OperatorNotes + "\n" + line
		}
		s.Flags.OperatorNotes = &line
	}
	r.applied = append(r.applied, deltas)
	return &before, nil
}

func (r *stubShipmentRepo) Search(_ context.Context, filter ports.SearchFilter) ([]*domain.CanonicalShipment, int64, error) {
	r.lastFilter = filter
	if r.searchErr != nil {
		return nil, 0, r.searchErr
	}
	return r.searchItems, r.searchTotal, nil
}

func (r *stubShipmentRepo) FindDelayed(_ context.Context, days int, _ time.Time) ([]*domain.CanonicalShipment, error) {
	r.lastDays = days
	if r.delayedErr != nil {
		return nil, r.delayedErr
	}
	return r.delayedItems, nil
}

func (r *stubShipmentRepo) Summary(_ context.Context, _ time.Time) (*ports.AnalyticsSummary, error) {
	if r.summaryErr != nil {
		return nil, r.summaryErr
	}
	return r.summary, nil
}

type stubAdapter struct {
	name    string
	result  *domain.CanonicalShipment
	err     error
	calls   int
	pushErr error
	pushed  []ports.FieldDeltas
}

func (a *stubAdapter) Name() string { return a.name }

func (a *stubAdapter) FetchShipment(_ context.Context, identifier string) (*domain.CanonicalShipment, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	cp := *a.result
	return &cp, nil
}

func (a *stubAdapter) PushUpdate(_ context.Context, identifier string, deltas ports.FieldDeltas) error {
	if a.pushErr != nil {
		return a.pushErr
	}
	a.pushed = append(a.pushed, deltas)
	return nil
}

func canonical(id string) *domain.CanonicalShipment {
	return &domain.CanonicalShipment{
		Identifier: id,
		Status:     domain.StatusInfo{Code: domain.StatusInTransit},
	}
}

// ---------------------------------------------------------------------------
// Resolve: full chain
// ---------------------------------------------------------------------------

func TestResolverService_Resolve_LocalHit(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.records["JOB-1"] = canonical("JOB-1")
	a1 := &stubAdapter{name: "logitude", result: canonical("JOB-1")}
	a2 := &stubAdapter{name: "dpworld", result: canonical("JOB-1")}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1, a2}, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "JOB-1", "")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Source != ports.SourceLocal {
		t.Errorf("Source = %q, want local", res.Source)
	}
	if res.Shipment.Source != ports.SourceLocal {
		t.Errorf("Shipment.Source = %q, want local", res.Shipment.Source)
	}
	if len(res.Attempts) != 0 {
		t.Errorf("Attempts = %v, want none", res.Attempts)
	}
	if a1.calls+a2.calls != 0 {
		t.Errorf("vendors were called %d times on a local hit", a1.calls+a2.calls)
	}
}

func TestResolverService_Resolve_LocalHitByAlias(t *testing.T) {
	repo := newStubShipmentRepo()
	s := canonical("JOB-1")
	container := "MSCU1234567"
	s.Tracking.ContainerNumber = &container
	repo.records["JOB-1"] = s

	svc := NewResolverService(repo, nil, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "MSCU1234567", "")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Shipment.Identifier != "JOB-1" {
		t.Errorf("Identifier = %q, want canonical id behind the alias", res.Shipment.Identifier)
	}
}

func TestResolverService_Resolve_FallbackInPriorityOrder(t *testing.T) {
	repo := newStubShipmentRepo()
	a1 := &stubAdapter{name: "logitude", err: &domain.ClientError{Vendor: "logitude", Status: 404}}
	a2 := &stubAdapter{name: "dpworld", result: canonical("DPW-9")}
	a3 := &stubAdapter{name: "tracktrace", result: canonical("TT-9")}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1, a2, a3}, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "DPW-9", "")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Source != "dpworld" {
		t.Errorf("Source = %q, want dpworld", res.Source)
	}
	if res.Shipment.Source != "dpworld" {
		t.Errorf("Shipment.Source = %q, want dpworld", res.Shipment.Source)
	}
	if a3.calls != 0 {
		t.Errorf("third vendor called %d times after an earlier success", a3.calls)
	}
	if len(res.Attempts) != 2 {
		t.Fatalf("Attempts = %v, want local miss plus logitude failure", res.Attempts)
	}
	if res.Attempts[0].Source != ports.SourceLocal || res.Attempts[0].Kind != domain.FailureNoData {
		t.Errorf("first attempt = %+v, want local/no_data", res.Attempts[0])
	}
	if res.Attempts[1].Source != "logitude" || res.Attempts[1].Kind != domain.FailureClientError {
		t.Errorf("second attempt = %+v, want logitude/client_error", res.Attempts[1])
	}
}

func TestResolverService_Resolve_StoreErrorFallsThrough(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.findErr = errors.New("mongo: connection reset")
	a1 := &stubAdapter{name: "logitude", result: canonical("JOB-2")}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1}, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "JOB-2", "")

	if err != nil {
		t.Fatalf("expected vendor fallback on store error, got: %v", err)
	}
	if res.Source != "logitude" {
		t.Errorf("Source = %q", res.Source)
	}
	if len(res.Attempts) != 1 || res.Attempts[0].Kind != domain.FailureUnexpected {
		t.Errorf("Attempts = %+v, want one unexpected local failure", res.Attempts)
	}
}

func TestResolverService_Resolve_TotalFailure(t *testing.T) {
	repo := newStubShipmentRepo()
	a1 := &stubAdapter{name: "logitude", err: &domain.ClientError{Vendor: "logitude", Status: 404}}
	a2 := &stubAdapter{name: "dpworld", err: &domain.RetriesExhaustedError{Vendor: "dpworld", Attempts: 3, Last: errors.New("503")}}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1, a2}, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "GHOST-1", "")

	var partial *domain.PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("error = %v, want *domain.PartialFailureError", err)
	}
	if len(partial.Attempts) != 3 {
		t.Fatalf("Attempts = %d, want 3 (local + 2 vendors)", len(partial.Attempts))
	}
	wantSources := []string{ports.SourceLocal, "logitude", "dpworld"}
	for i, want := range wantSources {
		if partial.Attempts[i].Source != want {
			t.Errorf("Attempts[%d].Source = %q, want %q", i, partial.Attempts[i].Source, want)
		}
	}
	if partial.DataMissing() {
		t.Error("DataMissing() = true, but dpworld failed with exhausted retries")
	}
}

func TestResolverService_Resolve_TotalMissIsDataMissing(t *testing.T) {
	repo := newStubShipmentRepo()
	a1 := &stubAdapter{name: "logitude", err: &domain.ClientError{Vendor: "logitude", Status: 404}}
	a2 := &stubAdapter{name: "dpworld", err: &domain.ClientError{Vendor: "dpworld", Status: 404}}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1, a2}, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "GHOST-2", "")

	var partial *domain.PartialFailureError
	if !errors.As(err, &partial) {
		t.Fatalf("error = %v, want *domain.PartialFailureError", err)
	}
	if !partial.DataMissing() {
		t.Error("DataMissing() = false, want true when every source simply lacks the record")
	}
}

// ---------------------------------------------------------------------------
// Resolve: single-source mode
// ---------------------------------------------------------------------------

func TestResolverService_Resolve_PreferredVendorSkipsChain(t *testing.T) {
	repo := newStubShipmentRepo()
	repo.records["JOB-3"] = canonical("JOB-3") // a local hit that must be bypassed
	a1 := &stubAdapter{name: "logitude", result: canonical("JOB-3")}
	a2 := &stubAdapter{name: "dpworld", result: canonical("JOB-3")}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1, a2}, zerolog.Nop())
	res, err := svc.Resolve(context.Background(), "JOB-3", "dpworld")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Source != "dpworld" {
		t.Errorf("Source = %q, want dpworld", res.Source)
	}
	if a1.calls != 0 {
		t.Errorf("logitude called %d times in single-source mode", a1.calls)
	}
}

func TestResolverService_Resolve_PreferredVendorFailureIsDirect(t *testing.T) {
	repo := newStubShipmentRepo()
	a1 := &stubAdapter{name: "logitude", err: &domain.ClientError{Vendor: "logitude", Status: 403, Body: "bad key"}}

	svc := NewResolverService(repo, []ports.VendorAdapter{a1}, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "JOB-4", "logitude")

	var clientErr *domain.ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("error = %v, want the vendor's *domain.ClientError with no fallback", err)
	}
}

func TestResolverService_Resolve_PreferredLocal(t *testing.T) {
	repo := newStubShipmentRepo()
	svc := NewResolverService(repo, nil, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "JOB-5", ports.SourceLocal); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("error = %v, want ErrShipmentNotFound", err)
	}

	repo.records["JOB-5"] = canonical("JOB-5")
	res, err := svc.Resolve(context.Background(), "JOB-5", ports.SourceLocal)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if res.Source != ports.SourceLocal {
		t.Errorf("Source = %q, want local", res.Source)
	}
}

func TestResolverService_Resolve_UnknownSource(t *testing.T) {
	svc := NewResolverService(newStubShipmentRepo(), nil, zerolog.Nop())
	_, err := svc.Resolve(context.Background(), "JOB-6", "acme")
	if !errors.Is(err, domain.ErrUnknownSource) {
		t.Fatalf("error = %v, want ErrUnknownSource", err)
	}
}
