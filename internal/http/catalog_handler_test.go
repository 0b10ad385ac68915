package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/service"
)

func TestGetMenu(t *testing.T) {
	router, _ := setupStorefront(t)

	w := doJSON(router, http.MethodGet, "/api/catalog", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu service.Menu
	decodeData(t, w, &menu)
	assert.Len(t, menu.Bases, 3)
	assert.Len(t, menu.Sizes, 3)
	assert.Len(t, menu.Toppings, 10)
	assert.Len(t, menu.Drinks, 7)
}

func TestGetCatalogSections(t *testing.T) {
	router, _ := setupStorefront(t)

	tests := []struct {
		name          string
		path          string
		expectedCount int
	}{
		{name: "bases", path: "/api/catalog/bases", expectedCount: 3},
		{name: "sizes", path: "/api/catalog/sizes", expectedCount: 3},
		{name: "toppings", path: "/api/catalog/toppings", expectedCount: 10},
		{name: "drinks", path: "/api/catalog/drinks", expectedCount: 7},
		{name: "toppings filtered by fruits", path: "/api/catalog/toppings?category=fruits", expectedCount: 4},
		{name: "toppings filtered by sweets", path: "/api/catalog/toppings?category=sweets", expectedCount: 3},
		{name: "drinks filtered by juices", path: "/api/catalog/drinks?category=juices", expectedCount: 3},
		{name: "drinks filtered by unknown category", path: "/api/catalog/drinks?category=wines", expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, http.StatusOK, w.Code)

			var items []map[string]interface{}
			decodeData(t, w, &items)
			assert.Len(t, items, tt.expectedCount)
		})
	}
}

func TestGetToppings_CategoryValues(t *testing.T) {
	router, _ := setupStorefront(t)

	w := doJSON(router, http.MethodGet, "/api/catalog/toppings?category=nuts", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var toppings []model.Topping
	decodeData(t, w, &toppings)
	for _, topping := range toppings {
		assert.Equal(t, model.ToppingCategoryNuts, topping.Category)
	}
}
