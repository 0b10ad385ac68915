// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/acaipro/storefront-service/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AddAcaiItemRequest represents the JSON request body for adding a
// configured açaí to the cart.
//
// @Description Request to add a configured açaí (base, size, toppings) to the cart
// @Example {"base_id": "1", "size_id": "m", "topping_ids": ["1", "9"]}
type AddAcaiItemRequest struct {
	// BaseID identifies the açaí base from the catalog.
	BaseID string `json:"base_id" binding:"required" example:"1"`
	// SizeID identifies the cup size from the catalog.
	SizeID string `json:"size_id" binding:"required" example:"m"`
	// ToppingIDs lists the chosen toppings. May be empty.
	ToppingIDs []string `json:"topping_ids" example:"1,9"`
} // @name AddAcaiItemRequest

// Validate performs custom validation on the request.
func (r *AddAcaiItemRequest) Validate() error {
	if r.BaseID == "" {
		return &ValidationError{Field: "base_id", Message: "base is required"}
	}
	if r.SizeID == "" {
		return &ValidationError{Field: "size_id", Message: "size is required"}
	}
	return nil
}

// AddDrinkItemRequest represents the JSON request body for adding a drink
// to the cart.
//
// @Description Request to add a drink to the cart
// @Example {"drink_id": "4", "quantity": 2}
type AddDrinkItemRequest struct {
	// DrinkID identifies the drink from the catalog.
	DrinkID string `json:"drink_id" binding:"required" example:"4"`
	// Quantity is the number of units. Defaults to 1 when omitted.
	Quantity int `json:"quantity" example:"2" minimum:"1"`
} // @name AddDrinkItemRequest

// Validate performs custom validation on the request.
func (r *AddDrinkItemRequest) Validate() error {
	if r.DrinkID == "" {
		return &ValidationError{Field: "drink_id", Message: "drink is required"}
	}
	if r.Quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	return nil
}

// UpdateQuantityRequest represents the JSON request body for changing a
// cart line's quantity. A quantity of zero or less removes the line.
//
// @Description Request to change a cart line quantity; zero removes the line
// @Example {"quantity": 3}
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateQuantityRequest

// CustomerPayload carries the checkout customer data.
//
// @Description Customer contact and delivery address
type CustomerPayload struct {
	Name    string         `json:"name" example:"Maria Silva"`
	Phone   string         `json:"phone" example:"11999990000"`
	Address AddressPayload `json:"address"`
} // @name CustomerPayload

// AddressPayload carries the structured delivery address.
type AddressPayload struct {
	Street       string `json:"street" example:"Rua das Palmeiras"`
	Number       string `json:"number" example:"120"`
	Neighborhood string `json:"neighborhood" example:"Centro"`
	Complement   string `json:"complement,omitempty" example:"Apto 32"`
	ZipCode      string `json:"zip_code,omitempty" example:"01310-000"`
} // @name AddressPayload

// CheckoutRequest represents the JSON request body for submitting an order.
//
// @Description Request to submit the current cart as an order
type CheckoutRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
} // @name CheckoutRequest

// Validate checks the required customer fields: name, phone, and the
// street, number, and neighborhood of the address. Complement and zip
// code are optional.
func (r *CheckoutRequest) Validate() error {
	if r.Customer.Name == "" {
		return &ValidationError{Field: "customer.name", Message: "name is required"}
	}
	if r.Customer.Phone == "" {
		return &ValidationError{Field: "customer.phone", Message: "phone is required"}
	}
	if r.Customer.Address.Street == "" {
		return &ValidationError{Field: "customer.address.street", Message: "street is required"}
	}
	if r.Customer.Address.Number == "" {
		return &ValidationError{Field: "customer.address.number", Message: "number is required"}
	}
	if r.Customer.Address.Neighborhood == "" {
		return &ValidationError{Field: "customer.address.neighborhood", Message: "neighborhood is required"}
	}
	return nil
}

// ToModel converts the payload into the domain customer record.
func (r *CheckoutRequest) ToModel() model.Customer {
	return model.Customer{
		Name:  r.Customer.Name,
		Phone: r.Customer.Phone,
		Address: model.Address{
			Street:       r.Customer.Address.Street,
			Number:       r.Customer.Address.Number,
			Neighborhood: r.Customer.Address.Neighborhood,
			Complement:   r.Customer.Address.Complement,
			ZipCode:      r.Customer.Address.ZipCode,
		},
	}
}

// UpdateOrderStatusRequest represents the JSON request body for advancing
// an order's status.
//
// @Description Request to advance an order to the next lifecycle status
// @Example {"status": "preparing"}
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"preparing"`
} // @name UpdateOrderStatusRequest

// Validate performs custom validation on the request.
func (r *UpdateOrderStatusRequest) Validate() error {
	if !model.OrderStatus(r.Status).Valid() {
		return &ValidationError{Field: "status", Message: "unknown order status"}
	}
	return nil
}

// UpdateSettingsRequest represents the JSON request body for updating
// store settings.
//
// @Description Request to update delivery pricing settings
// @Example {"delivery_fee": 5.00, "delivery_lead_minutes": 45}
type UpdateSettingsRequest struct {
	// DeliveryFee is the flat fee added to every order total.
	DeliveryFee float64 `json:"delivery_fee" example:"5.00"`
	// DeliveryLeadMinutes is the estimated minutes until delivery.
	DeliveryLeadMinutes int `json:"delivery_lead_minutes" example:"45"`
	// UpdatedBy is the identifier of who changed the settings.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateSettingsRequest

// Validate performs custom validation on the request.
func (r *UpdateSettingsRequest) Validate() error {
	if r.DeliveryFee < 0 {
		return &ValidationError{Field: "delivery_fee", Message: "must not be negative"}
	}
	if r.DeliveryLeadMinutes <= 0 {
		return &ValidationError{Field: "delivery_lead_minutes", Message: "must be a positive integer"}
	}
	return nil
}
