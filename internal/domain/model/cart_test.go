package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSize() AcaiSize {
	return AcaiSize{ID: "m", Name: "Médio", Volume: "500ml", Multiplier: 1.5}
}

func testBase() AcaiBase {
	return AcaiBase{ID: "1", Name: "Açaí Tradicional", Price: 12.00}
}

func testToppings() []Topping {
	return []Topping{
		{ID: "1", Name: "Banana", Price: 2.00, Category: ToppingCategoryFruits},
		{ID: "9", Name: "Chocolate", Price: 3.00, Category: ToppingCategorySweets},
	}
}

func testDrink() Drink {
	return Drink{ID: "4", Name: "Refrigerante Cola", Price: 5.00, Category: DrinkCategorySodas, Size: "350ml"}
}

func TestAcaiSelection_UnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		size     AcaiSize
		base     AcaiBase
		toppings []Topping
		expected float64
	}{
		{
			name:     "base times multiplier plus toppings",
			size:     testSize(),
			base:     testBase(),
			toppings: testToppings(),
			expected: 23.00, // 12.00*1.5 + 2.00 + 3.00
		},
		{
			name:     "no toppings",
			size:     AcaiSize{ID: "p", Multiplier: 1},
			base:     testBase(),
			expected: 12.00,
		},
		{
			name:     "large size doubles base",
			size:     AcaiSize{ID: "g", Multiplier: 2},
			base:     AcaiBase{ID: "3", Price: 15.00},
			toppings: []Topping{{ID: "6", Price: 4.00}},
			expected: 34.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := AcaiSelection{Size: tt.size, Base: tt.base, Toppings: tt.toppings}
			assert.Equal(t, tt.expected, sel.UnitPrice())
		})
	}
}

func TestCart_AddAcai(t *testing.T) {
	cart := NewCart()

	id := cart.AddAcai(testSize(), testBase(), testToppings())

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, id, item.ID)
	assert.Equal(t, ItemKindAcai, item.Kind)
	assert.NotNil(t, item.Acai)
	assert.Nil(t, item.Drink)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 23.00, item.TotalPrice)
}

func TestCart_AddDrink(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectedQty   int
		expectedTotal float64
	}{
		{name: "explicit quantity", quantity: 2, expectedQty: 2, expectedTotal: 10.00},
		{name: "quantity below one defaults to one", quantity: 0, expectedQty: 1, expectedTotal: 5.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			id := cart.AddDrink(testDrink(), tt.quantity)

			item, ok := cart.Item(id)
			require.True(t, ok)
			assert.Equal(t, ItemKindDrink, item.Kind)
			assert.NotNil(t, item.Drink)
			assert.Nil(t, item.Acai)
			assert.Equal(t, tt.expectedQty, item.Quantity)
			assert.Equal(t, tt.expectedTotal, item.TotalPrice)
		})
	}
}

// Subtotal and TotalItems must always equal the sums over current items.
func TestCart_DerivedAggregates(t *testing.T) {
	cart := NewCart()
	cart.AddAcai(testSize(), testBase(), testToppings()) // 23.00, qty 1
	cart.AddDrink(testDrink(), 2)                        // 10.00, qty 2

	assert.Equal(t, 33.00, cart.Subtotal())
	assert.Equal(t, 3, cart.TotalItems())

	var expected float64
	var expectedQty int
	for _, item := range cart.Items {
		expected += item.TotalPrice
		expectedQty += item.Quantity
	}
	assert.Equal(t, RoundPrice(expected), cart.Subtotal())
	assert.Equal(t, expectedQty, cart.TotalItems())
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("recomputes total from unit composition", func(t *testing.T) {
		cart := NewCart()
		id := cart.AddAcai(testSize(), testBase(), testToppings())

		cart.SetQuantity(id, 3)

		item, ok := cart.Item(id)
		require.True(t, ok)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 69.00, item.TotalPrice)
	})

	t.Run("zero removes the item", func(t *testing.T) {
		cart := NewCart()
		id := cart.AddDrink(testDrink(), 1)

		cart.SetQuantity(id, 0)

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0.0, cart.Subtotal())
	})

	t.Run("negative removes the item", func(t *testing.T) {
		cart := NewCart()
		id := cart.AddDrink(testDrink(), 2)

		cart.SetQuantity(id, -1)

		assert.Empty(t, cart.Items)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.AddDrink(testDrink(), 1)

		cart.SetQuantity("missing", 5)

		assert.Equal(t, 5.00, cart.Subtotal())
		assert.Equal(t, 1, cart.TotalItems())
	})
}

// Repeated quantity updates must not drift the implied unit price, because
// totals are recomputed from the stored selection rather than the previous
// cached total.
func TestCart_SetQuantity_UnitPriceStable(t *testing.T) {
	cart := NewCart()
	base := AcaiBase{ID: "2", Price: 14.00}
	size := AcaiSize{ID: "m", Multiplier: 1.5}
	toppings := []Topping{{ID: "3", Price: 3.50}, {ID: "10", Price: 2.00}}
	id := cart.AddAcai(size, base, toppings)

	item, _ := cart.Item(id)
	unit := item.UnitPrice()

	for _, qty := range []int{7, 3, 11, 2, 9, 1, 5} {
		cart.SetQuantity(id, qty)
		item, ok := cart.Item(id)
		require.True(t, ok)
		assert.Equal(t, RoundPrice(unit*float64(qty)), item.TotalPrice)
		assert.Equal(t, unit, RoundPrice(item.TotalPrice/float64(qty)))
	}
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	id1 := cart.AddDrink(testDrink(), 1)
	id2 := cart.AddAcai(testSize(), testBase(), nil)

	cart.Remove(id1)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, id2, cart.Items[0].ID)

	// Removing a nonexistent id must not change anything.
	before := cart.Subtotal()
	cart.Remove("does-not-exist")
	assert.Equal(t, before, cart.Subtotal())
	assert.Len(t, cart.Items, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddAcai(testSize(), testBase(), testToppings())
	cart.AddDrink(testDrink(), 4)

	cart.Clear()

	assert.Equal(t, 0.0, cart.Subtotal())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Empty(t, cart.Items)
}

func TestCart_InsertionOrderPreserved(t *testing.T) {
	cart := NewCart()
	first := cart.AddDrink(testDrink(), 1)
	second := cart.AddAcai(testSize(), testBase(), nil)
	third := cart.AddDrink(Drink{ID: "6", Name: "Água Mineral", Price: 3.00, Category: DrinkCategoryWaters}, 1)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, []string{first, second, third}, []string{cart.Items[0].ID, cart.Items[1].ID, cart.Items[2].ID})
}

func TestCart_Snapshot_IsDeepCopy(t *testing.T) {
	cart := NewCart()
	cart.AddAcai(testSize(), testBase(), testToppings())

	snapshot := cart.Snapshot()
	require.Len(t, snapshot, 1)

	// Mutating the snapshot must not touch the live cart.
	snapshot[0].Acai.Toppings[0].Price = 99.00
	snapshot[0].Quantity = 42

	assert.Equal(t, 2.00, cart.Items[0].Acai.Toppings[0].Price)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestToppingCategory_Valid(t *testing.T) {
	assert.True(t, ToppingCategoryFruits.Valid())
	assert.True(t, ToppingCategoryExtras.Valid())
	assert.False(t, ToppingCategory("candy").Valid())
}

func TestDrinkCategory_Valid(t *testing.T) {
	assert.True(t, DrinkCategoryJuices.Valid())
	assert.False(t, DrinkCategory("smoothies").Valid())
}
