// Package repository provides data access for store settings.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreSettings represents a store settings document. Exactly one
// document is active; creating a new one deactivates the rest so the
// settings history stays queryable.
type StoreSettings struct {
	ID                  primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	DeliveryFee         float64                `bson:"delivery_fee" json:"delivery_fee"`
	DeliveryLeadMinutes int                    `bson:"delivery_lead_minutes" json:"delivery_lead_minutes"`
	Active              bool                   `bson:"active" json:"active"`
	Version             int                    `bson:"version" json:"version"`
	CreatedAt           time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy           string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata            map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// SettingsRepository provides methods for store settings operations.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Settings,
	}
}

// GetActive returns the active store settings.
func (r *SettingsRepository) GetActive(ctx context.Context) (*StoreSettings, error) {
	var settings StoreSettings
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active settings found
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create creates a new active settings document, deactivating any previous one.
func (r *SettingsRepository) Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*StoreSettings, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	settings := StoreSettings{
		ID:                  primitive.NewObjectID(),
		DeliveryFee:         deliveryFee,
		DeliveryLeadMinutes: leadMinutes,
		Active:              true,
		Version:             1,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
		CreatedBy:           createdBy,
		Metadata:            make(map[string]interface{}),
	}

	_, err = r.collection.InsertOne(ctx, settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Update updates an existing settings document, bumping its version.
func (r *SettingsRepository) Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*StoreSettings, error) {
	var current StoreSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"delivery_fee":          deliveryFee,
			"delivery_lead_minutes": leadMinutes,
			"updated_at":            time.Now(),
			"version":               current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var settings StoreSettings
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// List returns all settings documents, newest first.
func (r *SettingsRepository) List(ctx context.Context, limit int) ([]StoreSettings, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var settings []StoreSettings
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}

	return settings, nil
}
