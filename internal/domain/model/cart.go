package model

import (
	"github.com/google/uuid"
)

// ItemKind discriminates the two cart line item variants.
type ItemKind string

const (
	// ItemKindAcai is a configured açaí (base + size + toppings).
	ItemKindAcai ItemKind = "acai"
	// ItemKindDrink is a flat-priced drink.
	ItemKindDrink ItemKind = "drink"
)

// AcaiSelection is the frozen composition of a configured açaí line item.
// It snapshots the catalog entries at add time so later catalog changes
// cannot alter an existing cart line.
type AcaiSelection struct {
	Size     AcaiSize  `json:"size" bson:"size"`
	Base     AcaiBase  `json:"base" bson:"base"`
	Toppings []Topping `json:"toppings" bson:"toppings"`
}

// UnitPrice computes the price of one unit of this selection:
// base price scaled by the size multiplier plus the sum of topping prices.
func (s AcaiSelection) UnitPrice() float64 {
	price := s.Base.Price * s.Size.Multiplier
	for _, t := range s.Toppings {
		price += t.Price
	}
	return RoundPrice(price)
}

// CartItem is a single cart line. Exactly one of Acai or Drink is set,
// according to Kind; the constructors below are the only way items are
// created, so a line cannot carry both payloads.
//
// @Description Cart line item, either a configured açaí or a drink
type CartItem struct {
	ID         string         `json:"id" bson:"id"`
	Kind       ItemKind       `json:"kind" bson:"kind"`
	Acai       *AcaiSelection `json:"acai,omitempty" bson:"acai,omitempty"`
	Drink      *Drink         `json:"drink,omitempty" bson:"drink,omitempty"`
	Quantity   int            `json:"quantity" bson:"quantity"`
	TotalPrice float64        `json:"total_price" bson:"total_price"`
}

// NewAcaiItem creates a quantity-1 line item for a configured açaí.
func NewAcaiItem(size AcaiSize, base AcaiBase, toppings []Topping) CartItem {
	selection := AcaiSelection{
		Size:     size,
		Base:     base,
		Toppings: append([]Topping(nil), toppings...),
	}
	return CartItem{
		ID:         uuid.New().String(),
		Kind:       ItemKindAcai,
		Acai:       &selection,
		Quantity:   1,
		TotalPrice: selection.UnitPrice(),
	}
}

// NewDrinkItem creates a line item for the given drink and quantity.
func NewDrinkItem(drink Drink, quantity int) CartItem {
	if quantity < 1 {
		quantity = 1
	}
	d := drink
	return CartItem{
		ID:         uuid.New().String(),
		Kind:       ItemKindDrink,
		Drink:      &d,
		Quantity:   quantity,
		TotalPrice: RoundPrice(d.Price * float64(quantity)),
	}
}

// UnitPrice recovers the per-unit price from the item's stored composition.
// It never derives from TotalPrice/Quantity, so repeated quantity updates
// cannot compound rounding error.
func (i CartItem) UnitPrice() float64 {
	switch i.Kind {
	case ItemKindAcai:
		if i.Acai != nil {
			return i.Acai.UnitPrice()
		}
	case ItemKindDrink:
		if i.Drink != nil {
			return RoundPrice(i.Drink.Price)
		}
	}
	return 0
}

// Cart is an insertion-ordered collection of line items.
// All mutators are total: a missing item id is a silent no-op, never an
// error, so stale UI references cannot fail the flow.
type Cart struct {
	Items []CartItem `json:"items" bson:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddAcai appends a configured açaí line (quantity 1) and returns its id.
func (c *Cart) AddAcai(size AcaiSize, base AcaiBase, toppings []Topping) string {
	item := NewAcaiItem(size, base, toppings)
	c.Items = append(c.Items, item)
	return item.ID
}

// AddDrink appends a drink line with the given quantity and returns its id.
func (c *Cart) AddDrink(drink Drink, quantity int) string {
	item := NewDrinkItem(drink, quantity)
	c.Items = append(c.Items, item)
	return item.ID
}

// Remove deletes the line with the given id. No-op if absent.
func (c *Cart) Remove(id string) {
	for idx, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity, recomputing its total from the
// stored unit composition. A quantity of zero or less removes the line.
// No-op if the id is absent.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].ID == id {
			c.Items[idx].Quantity = quantity
			c.Items[idx].TotalPrice = RoundPrice(c.Items[idx].UnitPrice() * float64(quantity))
			return
		}
	}
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// Item returns the line with the given id, or false if absent.
func (c *Cart) Item(id string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CartItem{}, false
}

// Subtotal derives the sum of line totals. Always recomputed from the
// current items rather than cached.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.TotalPrice
	}
	return RoundPrice(sum)
}

// TotalItems derives the sum of line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Snapshot returns a deep copy of the cart's items, suitable for freezing
// into an order.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	for idx := range items {
		if items[idx].Acai != nil {
			sel := *items[idx].Acai
			sel.Toppings = append([]Topping(nil), sel.Toppings...)
			items[idx].Acai = &sel
		}
		if items[idx].Drink != nil {
			d := *items[idx].Drink
			items[idx].Drink = &d
		}
	}
	return items
}
