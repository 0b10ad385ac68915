// Package repository provides data access for orders.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

// OrderQueryOptions provides filters for listing orders.
type OrderQueryOptions struct {
	Status    model.OrderStatus
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// OrderStats aggregates order counts and revenue for the admin dashboard.
type OrderStats struct {
	TotalOrders  int64            `json:"total_orders"`
	TotalRevenue float64          `json:"total_revenue"`
	ByStatus     map[string]int64 `json:"by_status"`
}

// OrdersRepository provides methods for order persistence.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Insert stores a materialized order.
func (r *OrdersRepository) Insert(ctx context.Context, order *model.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID returns the order with the given id, or nil when not found.
func (r *OrdersRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders matching the filters, newest first.
func (r *OrdersRepository) List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error) {
	filter := buildOrderFilter(opts)

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateStatus sets the status of an order and returns the updated document,
// or nil when the order does not exist. Transition rules are enforced by the
// order service, not here.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Count returns the number of orders matching the filters.
func (r *OrdersRepository) Count(ctx context.Context, opts OrderQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildOrderFilter(opts))
}

// Stats aggregates totals and per-status counts over all orders.
func (r *OrdersRepository) Stats(ctx context.Context) (*OrderStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Status  string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &OrderStats{ByStatus: make(map[string]int64)}
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.TotalRevenue += row.Revenue
		stats.ByStatus[row.Status] = row.Count
	}
	stats.TotalRevenue = model.RoundPrice(stats.TotalRevenue)

	return stats, nil
}

func buildOrderFilter(opts OrderQueryOptions) bson.M {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["created_at"] = timeFilter
	}
	return filter
}
