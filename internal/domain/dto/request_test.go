package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Customer: CustomerPayload{
			Name:  "Maria Silva",
			Phone: "11999990000",
			Address: AddressPayload{
				Street:       "Rua das Palmeiras",
				Number:       "120",
				Neighborhood: "Centro",
			},
		},
	}
}

func TestCheckoutRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CheckoutRequest)
		wantField string
	}{
		{name: "valid", mutate: func(r *CheckoutRequest) {}},
		{
			name:      "missing name",
			mutate:    func(r *CheckoutRequest) { r.Customer.Name = "" },
			wantField: "customer.name",
		},
		{
			name:      "missing phone",
			mutate:    func(r *CheckoutRequest) { r.Customer.Phone = "" },
			wantField: "customer.phone",
		},
		{
			name:      "missing street",
			mutate:    func(r *CheckoutRequest) { r.Customer.Address.Street = "" },
			wantField: "customer.address.street",
		},
		{
			name:      "missing number",
			mutate:    func(r *CheckoutRequest) { r.Customer.Address.Number = "" },
			wantField: "customer.address.number",
		},
		{
			name:      "missing neighborhood",
			mutate:    func(r *CheckoutRequest) { r.Customer.Address.Neighborhood = "" },
			wantField: "customer.address.neighborhood",
		},
		{
			name:   "complement and zip are optional",
			mutate: func(r *CheckoutRequest) { r.Customer.Address.Complement = ""; r.Customer.Address.ZipCode = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestAddAcaiItemRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AddAcaiItemRequest{BaseID: "1", SizeID: "m"}).Validate())
	assert.Error(t, (&AddAcaiItemRequest{SizeID: "m"}).Validate())
	assert.Error(t, (&AddAcaiItemRequest{BaseID: "1"}).Validate())
}

func TestAddDrinkItemRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AddDrinkItemRequest{DrinkID: "4", Quantity: 2}).Validate())
	assert.NoError(t, (&AddDrinkItemRequest{DrinkID: "4"}).Validate())
	assert.Error(t, (&AddDrinkItemRequest{Quantity: 1}).Validate())
	assert.Error(t, (&AddDrinkItemRequest{DrinkID: "4", Quantity: -1}).Validate())
}

func TestUpdateOrderStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateOrderStatusRequest{Status: "preparing"}).Validate())
	assert.Error(t, (&UpdateOrderStatusRequest{Status: "shipped"}).Validate())
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateSettingsRequest{DeliveryFee: 5.0, DeliveryLeadMinutes: 45}).Validate())
	assert.Error(t, (&UpdateSettingsRequest{DeliveryFee: -1, DeliveryLeadMinutes: 45}).Validate())
	assert.Error(t, (&UpdateSettingsRequest{DeliveryFee: 5.0}).Validate())
}

func TestCheckoutRequest_ToModel(t *testing.T) {
	req := validCheckoutRequest()
	req.Customer.Address.Complement = "Apto 32"

	customer := req.ToModel()

	assert.Equal(t, "Maria Silva", customer.Name)
	assert.Equal(t, "Rua das Palmeiras", customer.Address.Street)
	assert.Equal(t, "Apto 32", customer.Address.Complement)
}

func TestAdminLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AdminLoginRequest{Password: "longenough"}).Validate())
	assert.Error(t, (&AdminLoginRequest{Password: "short"}).Validate())
}

func TestErrCodeFromStatus(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidRequest, ErrCodeFromStatus(400))
	assert.Equal(t, ErrCodeUnauthorized, ErrCodeFromStatus(401))
	assert.Equal(t, ErrCodeNotFound, ErrCodeFromStatus(404))
	assert.Equal(t, ErrCodeConflict, ErrCodeFromStatus(409))
	assert.Equal(t, ErrCodeRateLimit, ErrCodeFromStatus(429))
	assert.Equal(t, ErrCodeUnavailable, ErrCodeFromStatus(503))
	assert.Equal(t, ErrCodeInternal, ErrCodeFromStatus(500))
}
