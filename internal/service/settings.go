package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// EffectiveSettings is the resolved delivery configuration applied to a
// checkout: values from the active settings document, or the configured
// defaults when none exists.
type EffectiveSettings struct {
	DeliveryFee      float64
	DeliveryLeadTime time.Duration
}

// SettingsService provides store settings operations.
type SettingsService interface {
	Effective(ctx context.Context) (EffectiveSettings, error)
	GetActive(ctx context.Context) (*repository.StoreSettings, error)
	Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*repository.StoreSettings, error)
	Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*repository.StoreSettings, error)
	List(ctx context.Context, limit int) ([]repository.StoreSettings, error)
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	settingsRepo repository.SettingsRepositoryInterface
	defaults     config.StoreConfig
}

// NewSettingsService creates a new settings service. The repository may be
// nil when MongoDB is disabled; reads then fall back to configured defaults
// and writes fail with ErrRepositoryNotConfigured.
func NewSettingsService(settingsRepo repository.SettingsRepositoryInterface, defaults config.StoreConfig) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Effective resolves the delivery fee and lead time for checkout. Errors from
// the repository fall back to defaults so an unavailable database never blocks
// order submission.
func (s *SettingsServiceImpl) Effective(ctx context.Context) (EffectiveSettings, error) {
	fallback := EffectiveSettings{
		DeliveryFee:      s.defaults.DeliveryFee,
		DeliveryLeadTime: s.defaults.DeliveryLeadTime,
	}

	if s.settingsRepo == nil {
		return fallback, nil
	}

	active, err := s.settingsRepo.GetActive(ctx)
	if err != nil || active == nil {
		return fallback, nil
	}

	return EffectiveSettings{
		DeliveryFee:      active.DeliveryFee,
		DeliveryLeadTime: time.Duration(active.DeliveryLeadMinutes) * time.Minute,
	}, nil
}

// GetActive returns the active settings document.
func (s *SettingsServiceImpl) GetActive(ctx context.Context) (*repository.StoreSettings, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.GetActive(ctx)
}

// Create creates a new active settings document.
func (s *SettingsServiceImpl) Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*repository.StoreSettings, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.Create(ctx, deliveryFee, leadMinutes, createdBy)
}

// Update updates an existing settings document.
func (s *SettingsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*repository.StoreSettings, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.Update(ctx, id, deliveryFee, leadMinutes, updatedBy)
}

// List returns the settings history, newest first.
func (s *SettingsServiceImpl) List(ctx context.Context, limit int) ([]repository.StoreSettings, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.List(ctx, limit)
}
