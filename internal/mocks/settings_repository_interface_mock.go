// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acaipro/storefront-service/internal/repository"
)

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) GetActive(ctx context.Context) (*repository.StoreSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*repository.StoreSettings, error) {
	args := m.Called(ctx, deliveryFee, leadMinutes, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*repository.StoreSettings, error) {
	args := m.Called(ctx, id, deliveryFee, leadMinutes, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.StoreSettings, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StoreSettings), args.Error(1)
}
