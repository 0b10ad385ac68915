// Package model defines the core domain entities for the storefront service.
package model

// ToppingCategory classifies toppings for the açaí builder.
type ToppingCategory string

const (
	ToppingCategoryFruits ToppingCategory = "fruits"
	ToppingCategoryNuts   ToppingCategory = "nuts"
	ToppingCategorySweets ToppingCategory = "sweets"
	ToppingCategoryExtras ToppingCategory = "extras"
)

// Valid reports whether the category is one of the known topping categories.
func (c ToppingCategory) Valid() bool {
	switch c {
	case ToppingCategoryFruits, ToppingCategoryNuts, ToppingCategorySweets, ToppingCategoryExtras:
		return true
	}
	return false
}

// DrinkCategory classifies drinks on the menu.
type DrinkCategory string

const (
	DrinkCategoryJuices DrinkCategory = "juices"
	DrinkCategorySodas  DrinkCategory = "sodas"
	DrinkCategoryWaters DrinkCategory = "waters"
	DrinkCategoryHot    DrinkCategory = "hot"
)

// Valid reports whether the category is one of the known drink categories.
func (c DrinkCategory) Valid() bool {
	switch c {
	case DrinkCategoryJuices, DrinkCategorySodas, DrinkCategoryWaters, DrinkCategoryHot:
		return true
	}
	return false
}

// AcaiBase is a configurable açaí base from the catalog.
//
// @Description Açaí base with its unit price before size multiplier
type AcaiBase struct {
	ID          string  `json:"id" bson:"id" example:"1"`
	Name        string  `json:"name" bson:"name" example:"Açaí Tradicional"`
	Price       float64 `json:"price" bson:"price" example:"12.00"`
	Description string  `json:"description" bson:"description"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
}

// AcaiSize is a cup size tier. Multiplier scales the base price.
//
// @Description Cup size with volume label and price multiplier
type AcaiSize struct {
	ID         string  `json:"id" bson:"id" example:"m"`
	Name       string  `json:"name" bson:"name" example:"Médio"`
	Volume     string  `json:"volume" bson:"volume" example:"500ml"`
	Multiplier float64 `json:"multiplier" bson:"multiplier" example:"1.5"`
}

// Topping is an additive-priced extra for a configured açaí.
//
// @Description Topping with additive price and category
type Topping struct {
	ID       string          `json:"id" bson:"id" example:"2"`
	Name     string          `json:"name" bson:"name" example:"Morango"`
	Price    float64         `json:"price" bson:"price" example:"3.00"`
	Category ToppingCategory `json:"category" bson:"category" example:"fruits"`
	Image    string          `json:"image,omitempty" bson:"image,omitempty"`
}

// Drink is a flat-priced simple product.
//
// @Description Drink with flat price, category, and size label
type Drink struct {
	ID       string        `json:"id" bson:"id" example:"4"`
	Name     string        `json:"name" bson:"name" example:"Refrigerante Cola"`
	Price    float64       `json:"price" bson:"price" example:"5.00"`
	Category DrinkCategory `json:"category" bson:"category" example:"sodas"`
	Size     string        `json:"size" bson:"size" example:"350ml"`
	Image    string        `json:"image,omitempty" bson:"image,omitempty"`
}
