// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog lookups.
type CatalogRepositoryInterface interface {
	GetBases(ctx context.Context) ([]model.AcaiBase, error)
	GetSizes(ctx context.Context) ([]model.AcaiSize, error)
	GetToppings(ctx context.Context) ([]model.Topping, error)
	GetDrinks(ctx context.Context) ([]model.Drink, error)
	BaseByID(ctx context.Context, id string) (model.AcaiBase, bool, error)
	SizeByID(ctx context.Context, id string) (model.AcaiSize, bool, error)
	ToppingByID(ctx context.Context, id string) (model.Topping, bool, error)
	DrinkByID(ctx context.Context, id string) (model.Drink, bool, error)
}

// OrdersRepositoryInterface defines the interface for order persistence.
type OrdersRepositoryInterface interface {
	Insert(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Count(ctx context.Context, opts OrderQueryOptions) (int64, error)
	Stats(ctx context.Context) (*OrderStats, error)
}

// SettingsRepositoryInterface defines the interface for store settings operations.
type SettingsRepositoryInterface interface {
	GetActive(ctx context.Context) (*StoreSettings, error)
	Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*StoreSettings, error)
	Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*StoreSettings, error)
	List(ctx context.Context, limit int) ([]StoreSettings, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *RequestLogDocument) error
	CreateMany(ctx context.Context, entries []*RequestLogDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*RequestLogDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
