package service

import (
	"context"
	"errors"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/metrics"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service/cache"
)

var (
	// ErrUnknownBase is returned when an açaí base id is not in the catalog.
	ErrUnknownBase = errors.New("unknown açaí base")
	// ErrUnknownSize is returned when a cup size id is not in the catalog.
	ErrUnknownSize = errors.New("unknown cup size")
	// ErrUnknownTopping is returned when a topping id is not in the catalog.
	ErrUnknownTopping = errors.New("unknown topping")
	// ErrUnknownDrink is returned when a drink id is not in the catalog.
	ErrUnknownDrink = errors.New("unknown drink")
)

// CartView is an immutable snapshot of a session's cart.
type CartView struct {
	Items      []model.CartItem
	Subtotal   float64
	TotalItems int
}

// CartService provides session cart operations. Catalog ids are resolved
// against the live menu at mutation time; stored items keep the composition
// they were priced with.
type CartService interface {
	Get(ctx context.Context, sessionID string) (CartView, error)
	AddAcai(ctx context.Context, sessionID, baseID, sizeID string, toppingIDs []string) (string, CartView, error)
	AddDrink(ctx context.Context, sessionID, drinkID string, quantity int) (string, CartView, error)
	Remove(ctx context.Context, sessionID, itemID string) (CartView, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (CartView, error)
	Clear(ctx context.Context, sessionID string) (CartView, error)
}

// CartServiceImpl implements CartService on top of the sharded session store.
type CartServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
	sessions    cache.SessionStore
}

// NewCartService creates a new cart service.
func NewCartService(catalogRepo repository.CatalogRepositoryInterface, sessions cache.SessionStore) CartService {
	return &CartServiceImpl{
		catalogRepo: catalogRepo,
		sessions:    sessions,
	}
}

// Get returns the current cart for a session. A new or expired session
// yields an empty cart.
func (s *CartServiceImpl) Get(_ context.Context, sessionID string) (CartView, error) {
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		view = snapshotView(cart)
	})
	return view, nil
}

// AddAcai resolves the composition against the catalog and adds a configured
// açaí to the cart with quantity 1.
func (s *CartServiceImpl) AddAcai(ctx context.Context, sessionID, baseID, sizeID string, toppingIDs []string) (string, CartView, error) {
	base, ok, err := s.catalogRepo.BaseByID(ctx, baseID)
	if err != nil {
		return "", CartView{}, err
	}
	if !ok {
		metrics.RecordCartOperation("add_acai", "error")
		return "", CartView{}, ErrUnknownBase
	}

	size, ok, err := s.catalogRepo.SizeByID(ctx, sizeID)
	if err != nil {
		return "", CartView{}, err
	}
	if !ok {
		metrics.RecordCartOperation("add_acai", "error")
		return "", CartView{}, ErrUnknownSize
	}

	toppings := make([]model.Topping, 0, len(toppingIDs))
	for _, id := range toppingIDs {
		topping, ok, err := s.catalogRepo.ToppingByID(ctx, id)
		if err != nil {
			return "", CartView{}, err
		}
		if !ok {
			metrics.RecordCartOperation("add_acai", "error")
			return "", CartView{}, ErrUnknownTopping
		}
		toppings = append(toppings, topping)
	}

	var itemID string
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		itemID = cart.AddAcai(size, base, toppings)
		view = snapshotView(cart)
	})
	metrics.RecordCartOperation("add_acai", "success")
	return itemID, view, nil
}

// AddDrink adds a drink to the cart. Quantities below one are coerced to one.
func (s *CartServiceImpl) AddDrink(ctx context.Context, sessionID, drinkID string, quantity int) (string, CartView, error) {
	drink, ok, err := s.catalogRepo.DrinkByID(ctx, drinkID)
	if err != nil {
		return "", CartView{}, err
	}
	if !ok {
		metrics.RecordCartOperation("add_drink", "error")
		return "", CartView{}, ErrUnknownDrink
	}

	var itemID string
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		itemID = cart.AddDrink(drink, quantity)
		view = snapshotView(cart)
	})
	metrics.RecordCartOperation("add_drink", "success")
	return itemID, view, nil
}

// Remove drops an item from the cart. Removing an unknown item id is a no-op.
func (s *CartServiceImpl) Remove(_ context.Context, sessionID, itemID string) (CartView, error) {
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		cart.Remove(itemID)
		view = snapshotView(cart)
	})
	metrics.RecordCartOperation("remove", "success")
	return view, nil
}

// SetQuantity updates an item's quantity. Zero or negative removes the item;
// an unknown item id is a no-op.
func (s *CartServiceImpl) SetQuantity(_ context.Context, sessionID, itemID string, quantity int) (CartView, error) {
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		cart.SetQuantity(itemID, quantity)
		view = snapshotView(cart)
	})
	metrics.RecordCartOperation("set_quantity", "success")
	return view, nil
}

// Clear empties the cart, keeping the session alive.
func (s *CartServiceImpl) Clear(_ context.Context, sessionID string) (CartView, error) {
	var view CartView
	s.sessions.With(sessionID, func(cart *model.Cart) {
		cart.Clear()
		view = snapshotView(cart)
	})
	metrics.RecordCartOperation("clear", "success")
	return view, nil
}

// snapshotView builds a CartView from a cart while the shard lock is held.
func snapshotView(cart *model.Cart) CartView {
	return CartView{
		Items:      cart.Snapshot(),
		Subtotal:   cart.Subtotal(),
		TotalItems: cart.TotalItems(),
	}
}
