package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

const collectionShipments = "shipments"

// Analytics windows.
const (
	arrivalLookahead = 7 * 24 * time.Hour
	topLocationCount = 5
	upcomingCount    = 5
)

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// anyIdentifier matches a document by primary id, container number, or
// master bill of lading.
func anyIdentifier(identifier string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"_id": identifier},
		bson.M{"tracking.container": identifier},
		bson.M{"metadata.master_bill": identifier},
	}}
}

// FindByAnyIdentifier retrieves a shipment by any of its identifying fields.
func (r *ShipmentRepository) FindByAnyIdentifier(ctx context.Context, identifier string) (*domain.CanonicalShipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.CanonicalShipment
	err := r.col.FindOne(ctx, anyIdentifier(identifier)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Upsert inserts or replaces a full canonical record.
func (r *ShipmentRepository) Upsert(ctx context.Context, s *domain.CanonicalShipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.Identifier}, s, options.Replace().SetUpsert(true))
	return err
}

// ApplyWrite applies the non-nil deltas to a matched record, stamps
// updated_at, and returns the pre-image. Note lines append to the existing
// operator notes.
func (r *ShipmentRepository) ApplyWrite(ctx context.Context, identifier string, deltas ports.FieldDeltas) (*domain.CanonicalShipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	before, err := r.FindByAnyIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	set := bson.M{"metadata.updated_at": time.Now().UTC()}
	if deltas.ETA != nil {
		set["schedule.eta"] = deltas.ETA.UTC()
	}
	if deltas.IsRisk != nil {
		set["flags.is_risk"] = *deltas.IsRisk
	}
	if deltas.Note != nil {
		notes := *deltas.Note
		if before.Flags.OperatorNotes != nil && *before.Flags.OperatorNotes != "" {
			notes = *before.Flags.OperatorNotes + "\n" + notes
		}
		set["flags.operator_notes"] = notes
	}

	if _, err := r.col.UpdateByID(ctx, before.Identifier, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return before, nil
}

// Search returns one page of shipments matching filter plus the total count.
func (r *ShipmentRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.CanonicalShipment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status.code"] = filter.Status
	}
	if filter.RiskOnly {
		query["flags.is_risk"] = true
	}
	if filter.Container != "" {
		query["tracking.container"] = bson.M{"$regex": regexp.QuoteMeta(filter.Container), "$options": "i"}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "metadata.updated_at", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*domain.CanonicalShipment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindDelayed returns in-flight shipments whose ETA lies more than days
// whole days before now, oldest ETA first.
func (r *ShipmentRepository) FindDelayed(ctx context.Context, days int, now time.Time) ([]*domain.CanonicalShipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cutoff := now.UTC().AddDate(0, 0, -days)
	query := bson.M{
		"status.code":  bson.M{"$in": domain.ActiveStatuses()},
		"schedule.eta": bson.M{"$lt": cutoff},
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "schedule.eta", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []*domain.CanonicalShipment
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Summary aggregates the whole store for the analytics endpoint.
func (r *ShipmentRepository) Summary(ctx context.Context, now time.Time) (*ports.AnalyticsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out := &ports.AnalyticsSummary{
		StatusBreakdown: map[string]int64{},
		ActiveVessels:   []string{},
		TopLocations:    []ports.LocationCount{},
	}

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out.TotalShipments = total

	risk, err := r.col.CountDocuments(ctx, bson.M{"flags.is_risk": true})
	if err != nil {
		return nil, err
	}
	out.RiskFlagged = risk

	if err := r.statusBreakdown(ctx, out); err != nil {
		return nil, err
	}
	if err := r.topLocations(ctx, out); err != nil {
		return nil, err
	}
	if err := r.activeVessels(ctx, out); err != nil {
		return nil, err
	}
	if err := r.upcomingArrivals(ctx, now, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ShipmentRepository) statusBreakdown(ctx context.Context, out *ports.AnalyticsSummary) error {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status.code", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		out.StatusBreakdown[row.Status] = row.Count
	}
	return nil
}

func (r *ShipmentRepository) topLocations(ctx context.Context, out *ports.AnalyticsSummary) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tracking.location.name": bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$tracking.location.name", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: topLocationCount}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Name  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		out.TopLocations = append(out.TopLocations, ports.LocationCount{Name: row.Name, Count: row.Count})
	}
	return nil
}

func (r *ShipmentRepository) activeVessels(ctx context.Context, out *ports.AnalyticsSummary) error {
	values, err := r.col.Distinct(ctx, "tracking.vessel", bson.M{
		"status.code": bson.M{"$in": bson.A{domain.StatusInTransit, domain.StatusAtPort}},
	})
	if err != nil {
		return err
	}
	for _, v := range values {
		if name, ok := v.(string); ok && name != "" {
			out.ActiveVessels = append(out.ActiveVessels, name)
		}
	}
	return nil
}

func (r *ShipmentRepository) upcomingArrivals(ctx context.Context, now time.Time, out *ports.AnalyticsSummary) error {
	window := bson.M{
		"schedule.eta": bson.M{"$gte": now.UTC(), "$lte": now.UTC().Add(arrivalLookahead)},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "schedule.eta", Value: 1}}).
		SetLimit(upcomingCount)
	cur, err := r.col.Find(ctx, window, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	var items []*domain.CanonicalShipment
	if err := cur.All(ctx, &items); err != nil {
		return err
	}
	for _, s := range items {
		arrival := ports.UpcomingArrival{Identifier: s.Identifier, ETA: s.Schedule.EstimatedArrival}
		if s.Tracking.ContainerNumber != nil {
			arrival.ContainerNumber = *s.Tracking.ContainerNumber
		}
		if s.Tracking.Location.Name != nil {
			arrival.Location = *s.Tracking.Location.Name
		}
		out.UpcomingArrivals = append(out.UpcomingArrivals, arrival)
	}
	return nil
}

// EnsureIndexes creates the lookup and analytics indexes on the shipments
// collection.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking.container", Value: 1}}},
		{Keys: bson.D{{Key: "metadata.master_bill", Value: 1}}},
		{Keys: bson.D{{Key: "status.code", Value: 1}}},
		{Keys: bson.D{{Key: "schedule.eta", Value: 1}}},
		{Keys: bson.D{{Key: "flags.is_risk", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
