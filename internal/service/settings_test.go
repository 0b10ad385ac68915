package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acaipro/storefront-service/internal/mocks"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
)

func TestSettingsService_Effective(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(*mocks.MockSettingsRepositoryInterface)
		nilRepo      bool
		expectedFee  float64
		expectedLead time.Duration
	}{
		{
			name: "active settings document",
			setupMock: func(m *mocks.MockSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(&repository.StoreSettings{
					DeliveryFee:         8.00,
					DeliveryLeadMinutes: 30,
					Active:              true,
				}, nil)
			},
			expectedFee:  8.00,
			expectedLead: 30 * time.Minute,
		},
		{
			name: "no active document falls back to defaults",
			setupMock: func(m *mocks.MockSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil)
			},
			expectedFee:  5.00,
			expectedLead: 45 * time.Minute,
		},
		{
			name: "repository error falls back to defaults",
			setupMock: func(m *mocks.MockSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedFee:  5.00,
			expectedLead: 45 * time.Minute,
		},
		{
			name:         "nil repository falls back to defaults",
			nilRepo:      true,
			expectedFee:  5.00,
			expectedLead: 45 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc service.SettingsService
			var mockRepo *mocks.MockSettingsRepositoryInterface
			if tt.nilRepo {
				svc = service.NewSettingsService(nil, testStoreDefaults())
			} else {
				mockRepo = new(mocks.MockSettingsRepositoryInterface)
				tt.setupMock(mockRepo)
				svc = service.NewSettingsService(mockRepo, testStoreDefaults())
			}

			effective, err := svc.Effective(context.Background())

			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedFee, effective.DeliveryFee, 0.001)
			assert.Equal(t, tt.expectedLead, effective.DeliveryLeadTime)
			if mockRepo != nil {
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestSettingsService_Create(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepositoryInterface)
	created := &repository.StoreSettings{
		ID:                  primitive.NewObjectID(),
		DeliveryFee:         6.50,
		DeliveryLeadMinutes: 40,
		Active:              true,
		Version:             1,
		CreatedBy:           "admin",
	}
	mockRepo.On("Create", mock.Anything, 6.50, 40, "admin").Return(created, nil)

	svc := service.NewSettingsService(mockRepo, testStoreDefaults())
	result, err := svc.Create(context.Background(), 6.50, 40, "admin")

	assert.NoError(t, err)
	assert.Equal(t, created, result)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_Update(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepositoryInterface)
	id := primitive.NewObjectID()
	updated := &repository.StoreSettings{
		ID:                  id,
		DeliveryFee:         9.00,
		DeliveryLeadMinutes: 50,
		Active:              true,
		Version:             2,
	}
	mockRepo.On("Update", mock.Anything, id, 9.00, 50, "admin").Return(updated, nil)

	svc := service.NewSettingsService(mockRepo, testStoreDefaults())
	result, err := svc.Update(context.Background(), id, 9.00, 50, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Version)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_NilRepository(t *testing.T) {
	svc := service.NewSettingsService(nil, testStoreDefaults())
	ctx := context.Background()

	_, err := svc.GetActive(ctx)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.Create(ctx, 5.00, 45, "admin")
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.Update(ctx, primitive.NewObjectID(), 5.00, 45, "admin")
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = svc.List(ctx, 10)
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
