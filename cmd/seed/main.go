// Command seed loads the demo shipment dataset and its audit trail into the
// local store. Safe to run repeatedly: an already-seeded store is left alone
// unless -force is passed, in which case records are overwritten in place.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
	mongodb "github.com/cargosight/tracking-api/internal/infrastructure/db/mongo"
	"github.com/cargosight/tracking-api/internal/pkg/config"
	"github.com/cargosight/tracking-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "reseed even when the store already has data")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "tracking-seed",
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = mongodb.Disconnect(client) }()

	repo := mongodb.NewShipmentRepository(db)
	audits := mongodb.NewAuditRepository(db)

	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	if !*force {
		_, total, err := repo.Search(ctx, ports.SearchFilter{Limit: 1})
		if err != nil {
			log.Fatal().Err(err).Msg("existing-data check failed")
		}
		if total > 0 {
			log.Warn().Int64("shipments", total).Msg("store already seeded, pass -force to overwrite")
			return
		}
	}

	shipments := sampleShipments(time.Now().UTC())
	for _, s := range shipments {
		if err := repo.Upsert(ctx, s); err != nil {
			log.Fatal().Err(err).Str("id", s.Identifier).Msg("seed shipment failed")
		}
	}

	entries := sampleAuditEntries(time.Now().UTC())
	for _, entry := range entries {
		if err := audits.Insert(ctx, entry); err != nil {
			log.Fatal().Err(err).Str("shipment_id", entry.ShipmentID).Msg("seed audit entry failed")
		}
	}

	log.Info().
		Int("shipments", len(shipments)).
		Int("audit_entries", len(entries)).
		Msg("store seeded")
}

// seedRow is the flat shape the demo dataset is written in; toShipment folds
// it into the canonical record.
type seedRow struct {
	id          string
	masterBill  string
	container   string
	vessel      string
	voyage      string
	status      domain.StatusCode
	description string
	etd         time.Time
	eta         time.Time
	location    string
	lat, lon    float64
	risk        bool
	notes       string
}

var seedRows = []seedRow{
	{
		id: "JOB-2025-001", masterBill: "MAEU123456789", container: "MSCU1234567",
		vessel: "MSC GULSUN", voyage: "025W",
		status:      domain.StatusInTransit,
		description: "Container loaded on vessel, departed from Port of Shanghai",
		etd:         time.Date(2025, time.December, 10, 8, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 25, 14, 30, 0, 0, time.UTC),
		location:    "South China Sea", lat: 22.3193, lon: 114.1694,
	},
	{
		id: "JOB-2025-002", masterBill: "COSU987654321", container: "COSU9876543",
		vessel: "COSCO SHIPPING UNIVERSE", voyage: "012E",
		status:      domain.StatusDelayed,
		description: "Vessel delayed by 48 hours due to adverse weather conditions in Suez Canal",
		etd:         time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 22, 16, 0, 0, 0, time.UTC),
		location:    "Suez Canal", lat: 30.5234, lon: 32.3426,
		risk:  true,
		notes: "Client notified about delay. Requested urgent update on ETA.",
	},
	{
		id: "JOB-2025-003", masterBill: "OOLU456789123", container: "OOLU4567891",
		vessel: "OOCL HONG KONG", voyage: "087N",
		status:      domain.StatusAtPort,
		description: "Container arrived at Port of Rotterdam, awaiting customs clearance",
		etd:         time.Date(2025, time.November, 28, 14, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 15, 9, 0, 0, 0, time.UTC),
		location:    "Port of Rotterdam", lat: 51.9244, lon: 4.4777,
		notes: "Customs documents submitted. Expecting clearance within 24 hours.",
	},
	{
		id: "JOB-2025-004", masterBill: "HLCU789456123", container: "HLCU7894561",
		vessel: "HAPAG-LLOYD EXPRESS", voyage: "034S",
		status:      domain.StatusDelivered,
		description: "Container delivered to final destination warehouse",
		etd:         time.Date(2025, time.November, 20, 6, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 8, 11, 0, 0, 0, time.UTC),
		location:    "Hamburg Warehouse District", lat: 53.5511, lon: 9.9937,
		notes: "Successful delivery. Client confirmed receipt of goods.",
	},
	{
		id: "JOB-2025-005", masterBill: "CMAU654321987", container: "CMAU6543219",
		vessel: "CMA CGM ANTOINE DE SAINT EXUPERY", voyage: "056W",
		status:      domain.StatusInTransit,
		description: "Container transiting through Mediterranean Sea",
		etd:         time.Date(2025, time.December, 12, 7, 30, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 28, 15, 0, 0, 0, time.UTC),
		location:    "Mediterranean Sea", lat: 36.8968, lon: 14.4424,
	},
	{
		id: "JOB-2025-006", masterBill: "EGLV111222333", container: "EGLV1112223",
		vessel: "EVER GIVEN", voyage: "019E",
		status:      domain.StatusDelayed,
		description: "Port congestion at Singapore, vessel waiting for berth allocation",
		etd:         time.Date(2025, time.December, 8, 12, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 20, 10, 0, 0, 0, time.UTC),
		location:    "Port of Singapore", lat: 1.2644, lon: 103.8223,
		risk:  true,
		notes: "High priority shipment. Customer is getting anxious about delays.",
	},
	{
		id: "JOB-2025-007", masterBill: "YMLU888777666", container: "YMLU8887776",
		vessel: "YANG MING WISDOM", voyage: "042N",
		status:      domain.StatusAtPort,
		description: "Container discharged at Port of Los Angeles, in transit to warehouse",
		etd:         time.Date(2025, time.November, 25, 9, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 16, 8, 30, 0, 0, time.UTC),
		location:    "Port of Los Angeles", lat: 33.7361, lon: -118.2644,
		notes: "Awaiting truck pickup for final mile delivery.",
	},
	{
		id: "JOB-2025-008", masterBill: "ONEY555444333", container: "ONEY5554443",
		vessel: "ONE APUS", voyage: "028W",
		status:      domain.StatusInTransit,
		description: "Container en route across Pacific Ocean",
		etd:         time.Date(2025, time.December, 11, 5, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 26, 20, 0, 0, 0, time.UTC),
		location:    "Pacific Ocean", lat: 35.6762, lon: -140.1234,
	},
	{
		id: "JOB-2025-009", masterBill: "ZIMU999888777", container: "ZIMU9998887",
		vessel: "ZIM SAMMY OFER", voyage: "064S",
		status:      domain.StatusCustomsHold,
		description: "Container held at customs for inspection - documentation discrepancy",
		etd:         time.Date(2025, time.November, 30, 11, 0, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 17, 13, 0, 0, 0, time.UTC),
		location:    "Port of Jebel Ali", lat: 25.0095, lon: 55.1136,
		risk:  true,
		notes: "URGENT: Missing commercial invoice. Coordinating with shipper to resolve.",
	},
	{
		id: "JOB-2025-010", masterBill: "MSMU777666555", container: "MSMU7776665",
		vessel: "MSC MAYA", voyage: "015E",
		status:      domain.StatusInTransit,
		description: "Container on vessel, smooth sailing expected",
		etd:         time.Date(2025, time.December, 13, 6, 30, 0, 0, time.UTC),
		eta:         time.Date(2025, time.December, 30, 17, 0, 0, 0, time.UTC),
		location:    "Indian Ocean", lat: -10.4475, lon: 70.3321,
		notes: "Standard shipment, no issues reported.",
	},
}

func sampleShipments(now time.Time) []*domain.CanonicalShipment {
	out := make([]*domain.CanonicalShipment, 0, len(seedRows))
	for _, row := range seedRows {
		out = append(out, row.toShipment(now))
	}
	return out
}

func (row seedRow) toShipment(now time.Time) *domain.CanonicalShipment {
	s := &domain.CanonicalShipment{
		Identifier: row.id,
		Tracking: domain.TrackingInfo{
			ContainerNumber: strPtr(row.container),
			VesselName:      strPtr(row.vessel),
			VoyageNumber:    strPtr(row.voyage),
			Location: domain.Location{
				Lat:  floatPtr(row.lat),
				Lon:  floatPtr(row.lon),
				Name: strPtr(row.location),
			},
		},
		Schedule: domain.Schedule{
			EstimatedDeparture: timePtr(row.etd),
			EstimatedArrival:   timePtr(row.eta),
		},
		Status: domain.StatusInfo{
			Code:        row.status,
			Description: strPtr(row.description),
		},
		Flags: domain.Flags{IsRisk: row.risk},
		Metadata: domain.Metadata{
			MasterBillOfLading: strPtr(row.masterBill),
			CreatedAt:          timePtr(now),
			UpdatedAt:          timePtr(now),
		},
	}
	if row.notes != "" {
		s.Flags.OperatorNotes = strPtr(row.notes)
	}
	return s
}

func sampleAuditEntries(now time.Time) []*domain.AuditEntry {
	return []*domain.AuditEntry{
		{
			ID:         uuid.NewString(),
			ShipmentID: "JOB-2025-002",
			Action:     domain.AuditUpdateETA,
			Field:      "schedule.eta",
			OldValue:   "2025-12-20T16:00:00Z",
			NewValue:   "2025-12-22T16:00:00Z",
			Reason:     "Weather delay in Suez Canal reported by vessel operator",
			Actor:      "ai-agent-001",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			ShipmentID: "JOB-2025-002",
			Action:     domain.AuditSetRiskFlag,
			Field:      "flags.is_risk",
			OldValue:   "false",
			NewValue:   "true",
			Reason:     "Client is high-priority and delay exceeds acceptable threshold",
			Actor:      "ai-agent-001",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			ShipmentID: "JOB-2025-006",
			Action:     domain.AuditAddNote,
			Field:      "flags.operator_notes",
			NewValue:   "High priority shipment. Customer is getting anxious about delays.",
			Reason:     "Customer inquiry received about shipment status",
			Actor:      "ai-agent-002",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			ShipmentID: "JOB-2025-009",
			Action:     domain.AuditSetRiskFlag,
			Field:      "flags.is_risk",
			OldValue:   "false",
			NewValue:   "true",
			Reason:     "Customs hold detected - requires immediate attention",
			Actor:      "ai-agent-003",
			CreatedAt:  now,
		},
	}
}

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }
