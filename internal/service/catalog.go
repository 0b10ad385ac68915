package service

import (
	"context"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/repository"
)

// Menu groups the full storefront catalog for a single response.
type Menu struct {
	Bases    []model.AcaiBase `json:"bases"`
	Sizes    []model.AcaiSize `json:"sizes"`
	Toppings []model.Topping  `json:"toppings"`
	Drinks   []model.Drink    `json:"drinks"`
}

// CatalogService provides read access to the storefront menu.
type CatalogService interface {
	Menu(ctx context.Context) (*Menu, error)
	Bases(ctx context.Context) ([]model.AcaiBase, error)
	Sizes(ctx context.Context) ([]model.AcaiSize, error)
	Toppings(ctx context.Context) ([]model.Topping, error)
	Drinks(ctx context.Context) ([]model.Drink, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

// Menu returns the complete menu.
func (s *CatalogServiceImpl) Menu(ctx context.Context) (*Menu, error) {
	bases, err := s.catalogRepo.GetBases(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := s.catalogRepo.GetSizes(ctx)
	if err != nil {
		return nil, err
	}
	toppings, err := s.catalogRepo.GetToppings(ctx)
	if err != nil {
		return nil, err
	}
	drinks, err := s.catalogRepo.GetDrinks(ctx)
	if err != nil {
		return nil, err
	}

	return &Menu{
		Bases:    bases,
		Sizes:    sizes,
		Toppings: toppings,
		Drinks:   drinks,
	}, nil
}

// Bases returns all açaí bases.
func (s *CatalogServiceImpl) Bases(ctx context.Context) ([]model.AcaiBase, error) {
	return s.catalogRepo.GetBases(ctx)
}

// Sizes returns all cup sizes.
func (s *CatalogServiceImpl) Sizes(ctx context.Context) ([]model.AcaiSize, error) {
	return s.catalogRepo.GetSizes(ctx)
}

// Toppings returns all toppings.
func (s *CatalogServiceImpl) Toppings(ctx context.Context) ([]model.Topping, error) {
	return s.catalogRepo.GetToppings(ctx)
}

// Drinks returns all drinks.
func (s *CatalogServiceImpl) Drinks(ctx context.Context) ([]model.Drink, error) {
	return s.catalogRepo.GetDrinks(ctx)
}
