package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cargosight/tracking-api/internal/api/metrics"
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

type resolverService struct {
	repo     ports.ShipmentRepository
	adapters []ports.VendorAdapter // fallback order, fixed at construction
	byName   map[string]ports.VendorAdapter
	log      zerolog.Logger
}

// NewResolverService returns a ResolverService that consults the local store
// first and then the given adapters in slice order.
func NewResolverService(repo ports.ShipmentRepository, adapters []ports.VendorAdapter, log zerolog.Logger) ports.ResolverService {
	byName := make(map[string]ports.VendorAdapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}
	return &resolverService{
		repo:     repo,
		adapters: adapters,
		byName:   byName,
		log:      log,
	}
}

// Resolve walks the source chain until one source produces a record.
func (s *resolverService) Resolve(ctx context.Context, identifier, preferredSource string) (*ports.Resolution, error) {
	if preferredSource != "" {
		return s.resolveSingle(ctx, identifier, preferredSource)
	}

	attempts := make([]domain.AdapterAttempt, 0, len(s.adapters)+1)

	// 1. Local store. A store error (not just a miss) also falls through to
	// the vendors: a degraded database must not take reads down with it.
	shipment, err := s.repo.FindByAnyIdentifier(ctx, identifier)
	if err == nil {
		s.log.Debug().Str("identifier", identifier).Msg("resolved from local store")
		metrics.ResolutionsTotal.WithLabelValues(ports.SourceLocal, "hit").Inc()
		shipment.Source = ports.SourceLocal
		return &ports.Resolution{Shipment: shipment, Source: ports.SourceLocal}, nil
	}
	attempts = append(attempts, domain.NewAttempt(ports.SourceLocal, err))

	// 2. Vendors in priority order, stopping at the first success. Sources
	// are tried sequentially: the chain exists to spare vendor quotas, so
	// racing all vendors per lookup would defeat it.
	for _, adapter := range s.adapters {
		shipment, err := adapter.FetchShipment(ctx, identifier)
		if err == nil {
			s.log.Info().
				Str("identifier", identifier).
				Str("source", adapter.Name()).
				Int("failed_sources", len(attempts)).
				Msg("resolved from vendor")
			metrics.ResolutionsTotal.WithLabelValues(adapter.Name(), "hit").Inc()
			shipment.Source = adapter.Name()
			return &ports.Resolution{Shipment: shipment, Source: adapter.Name(), Attempts: attempts}, nil
		}
		attempts = append(attempts, domain.NewAttempt(adapter.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}

	metrics.ResolutionsTotal.WithLabelValues("none", "miss").Inc()
	s.log.Warn().
		Str("identifier", identifier).
		Int("sources_tried", len(attempts)).
		Msg("no source could resolve shipment")
	return nil, &domain.PartialFailureError{Identifier: identifier, Attempts: attempts}
}

// resolveSingle restricts the lookup to one named source, with no fallback.
func (s *resolverService) resolveSingle(ctx context.Context, identifier, source string) (*ports.Resolution, error) {
	if source == ports.SourceLocal {
		shipment, err := s.repo.FindByAnyIdentifier(ctx, identifier)
		if err != nil {
			metrics.ResolutionsTotal.WithLabelValues(ports.SourceLocal, "miss").Inc()
			return nil, err
		}
		metrics.ResolutionsTotal.WithLabelValues(ports.SourceLocal, "hit").Inc()
		shipment.Source = ports.SourceLocal
		return &ports.Resolution{Shipment: shipment, Source: ports.SourceLocal}, nil
	}

	adapter, ok := s.byName[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, source)
	}
	shipment, err := adapter.FetchShipment(ctx, identifier)
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues(source, "miss").Inc()
		return nil, err
	}
	metrics.ResolutionsTotal.WithLabelValues(source, "hit").Inc()
	shipment.Source = source
	return &ports.Resolution{Shipment: shipment, Source: source}, nil
}
