package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultDelayDays = 1
	auditTrailLimit  = 50
)

type queryService struct {
	repo  ports.ShipmentRepository
	audit ports.AuditRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewQueryService returns the read-only query surface over the local store.
func NewQueryService(repo ports.ShipmentRepository, audit ports.AuditRepository, log zerolog.Logger) ports.QueryService {
	return &queryService{repo: repo, audit: audit, log: log, now: time.Now}
}

func (s *queryService) Search(ctx context.Context, filter ports.SearchFilter) (*ports.SearchResult, error) {
	if filter.Status != "" && !domain.StatusCode(filter.Status).IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("shipment search failed")
		return nil, err
	}
	return &ports.SearchResult{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// Delayed lists in-flight shipments whose ETA lies more than days in the
// past, oldest first, annotated with how many whole days late each one is.
func (s *queryService) Delayed(ctx context.Context, days int) ([]ports.DelayedShipment, error) {
	if days < 0 {
		days = defaultDelayDays
	}
	now := s.now().UTC()
	shipments, err := s.repo.FindDelayed(ctx, days, now)
	if err != nil {
		s.log.Error().Err(err).Msg("delayed shipment query failed")
		return nil, err
	}

	out := make([]ports.DelayedShipment, 0, len(shipments))
	for _, shipment := range shipments {
		d := ports.DelayedShipment{Shipment: shipment}
		if eta := shipment.Schedule.EstimatedArrival; eta != nil {
			d.DaysDelayed = int(now.Sub(eta.UTC()).Hours() / 24)
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *queryService) Analytics(ctx context.Context) (*ports.AnalyticsSummary, error) {
	summary, err := s.repo.Summary(ctx, s.now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("analytics aggregation failed")
		return nil, err
	}
	return summary, nil
}

// AuditTrail lists an existing shipment's audit entries, newest first. The
// existence check makes a bad identifier a 404 instead of an empty list.
func (s *queryService) AuditTrail(ctx context.Context, identifier string) ([]*domain.AuditEntry, error) {
	shipment, err := s.repo.FindByAnyIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.audit.ListByShipment(ctx, shipment.Identifier, auditTrailLimit)
}
