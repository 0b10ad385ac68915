// Package repository provides data access for the storefront catalog.
package repository

import (
	"context"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

// Catalog fixtures. The menu is curated by the store owner and ships with
// the service; prices are in BRL.
var defaultBases = []model.AcaiBase{
	{ID: "1", Name: "Açaí Tradicional", Price: 12.00, Description: "Açaí puro e cremoso, sabor original da Amazônia"},
	{ID: "2", Name: "Açaí com Banana", Price: 14.00, Description: "Açaí batido com banana, mais doce e cremoso"},
	{ID: "3", Name: "Açaí com Guaraná", Price: 15.00, Description: "Açaí energizado com guaraná natural"},
}

var defaultSizes = []model.AcaiSize{
	{ID: "p", Name: "Pequeno", Volume: "300ml", Multiplier: 1},
	{ID: "m", Name: "Médio", Volume: "500ml", Multiplier: 1.5},
	{ID: "g", Name: "Grande", Volume: "700ml", Multiplier: 2},
}

var defaultToppings = []model.Topping{
	{ID: "1", Name: "Banana", Price: 2.00, Category: model.ToppingCategoryFruits},
	{ID: "2", Name: "Morango", Price: 3.00, Category: model.ToppingCategoryFruits},
	{ID: "3", Name: "Kiwi", Price: 3.50, Category: model.ToppingCategoryFruits},
	{ID: "4", Name: "Manga", Price: 2.50, Category: model.ToppingCategoryFruits},
	{ID: "5", Name: "Granola", Price: 2.50, Category: model.ToppingCategoryNuts},
	{ID: "6", Name: "Castanha", Price: 4.00, Category: model.ToppingCategoryNuts},
	{ID: "7", Name: "Amendoim", Price: 2.00, Category: model.ToppingCategoryNuts},
	{ID: "8", Name: "Leite Condensado", Price: 2.50, Category: model.ToppingCategorySweets},
	{ID: "9", Name: "Chocolate", Price: 3.00, Category: model.ToppingCategorySweets},
	{ID: "10", Name: "Mel", Price: 2.00, Category: model.ToppingCategorySweets},
}

var defaultDrinks = []model.Drink{
	{ID: "1", Name: "Suco de Laranja", Price: 8.00, Category: model.DrinkCategoryJuices, Size: "500ml"},
	{ID: "2", Name: "Suco de Acerola", Price: 8.50, Category: model.DrinkCategoryJuices, Size: "500ml"},
	{ID: "3", Name: "Suco de Maracujá", Price: 9.00, Category: model.DrinkCategoryJuices, Size: "500ml"},
	{ID: "4", Name: "Refrigerante Cola", Price: 5.00, Category: model.DrinkCategorySodas, Size: "350ml"},
	{ID: "5", Name: "Refrigerante Guaraná", Price: 5.00, Category: model.DrinkCategorySodas, Size: "350ml"},
	{ID: "6", Name: "Água Mineral", Price: 3.00, Category: model.DrinkCategoryWaters, Size: "500ml"},
	{ID: "7", Name: "Água de Coco", Price: 6.00, Category: model.DrinkCategoryWaters, Size: "300ml"},
}

// CatalogRepository serves the menu from in-process fixtures. Lookup maps
// are built once at construction; all reads are safe for concurrent use.
type CatalogRepository struct {
	bases    []model.AcaiBase
	sizes    []model.AcaiSize
	toppings []model.Topping
	drinks   []model.Drink

	baseByID    map[string]model.AcaiBase
	sizeByID    map[string]model.AcaiSize
	toppingByID map[string]model.Topping
	drinkByID   map[string]model.Drink
}

// NewCatalogRepository creates a catalog repository backed by the default menu.
func NewCatalogRepository() *CatalogRepository {
	return NewCatalogRepositoryWithMenu(defaultBases, defaultSizes, defaultToppings, defaultDrinks)
}

// NewCatalogRepositoryWithMenu creates a catalog repository with a custom menu.
func NewCatalogRepositoryWithMenu(bases []model.AcaiBase, sizes []model.AcaiSize, toppings []model.Topping, drinks []model.Drink) *CatalogRepository {
	r := &CatalogRepository{
		bases:       bases,
		sizes:       sizes,
		toppings:    toppings,
		drinks:      drinks,
		baseByID:    make(map[string]model.AcaiBase, len(bases)),
		sizeByID:    make(map[string]model.AcaiSize, len(sizes)),
		toppingByID: make(map[string]model.Topping, len(toppings)),
		drinkByID:   make(map[string]model.Drink, len(drinks)),
	}
	for _, b := range bases {
		r.baseByID[b.ID] = b
	}
	for _, s := range sizes {
		r.sizeByID[s.ID] = s
	}
	for _, t := range toppings {
		r.toppingByID[t.ID] = t
	}
	for _, d := range drinks {
		r.drinkByID[d.ID] = d
	}
	return r
}

// GetBases returns all açaí bases.
func (r *CatalogRepository) GetBases(_ context.Context) ([]model.AcaiBase, error) {
	return r.bases, nil
}

// GetSizes returns all cup sizes.
func (r *CatalogRepository) GetSizes(_ context.Context) ([]model.AcaiSize, error) {
	return r.sizes, nil
}

// GetToppings returns all toppings.
func (r *CatalogRepository) GetToppings(_ context.Context) ([]model.Topping, error) {
	return r.toppings, nil
}

// GetDrinks returns all drinks.
func (r *CatalogRepository) GetDrinks(_ context.Context) ([]model.Drink, error) {
	return r.drinks, nil
}

// BaseByID looks up an açaí base by id.
func (r *CatalogRepository) BaseByID(_ context.Context, id string) (model.AcaiBase, bool, error) {
	b, ok := r.baseByID[id]
	return b, ok, nil
}

// SizeByID looks up a cup size by id.
func (r *CatalogRepository) SizeByID(_ context.Context, id string) (model.AcaiSize, bool, error) {
	s, ok := r.sizeByID[id]
	return s, ok, nil
}

// ToppingByID looks up a topping by id.
func (r *CatalogRepository) ToppingByID(_ context.Context, id string) (model.Topping, bool, error) {
	t, ok := r.toppingByID[id]
	return t, ok, nil
}

// DrinkByID looks up a drink by id.
func (r *CatalogRepository) DrinkByID(_ context.Context, id string) (model.Drink, bool, error) {
	d, ok := r.drinkByID[id]
	return d, ok, nil
}
