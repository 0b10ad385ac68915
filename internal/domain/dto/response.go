package dto

import (
	"net/http"
	"time"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a temporarily unavailable dependency.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-06-01T18:30:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"customer.address.number: number is required"`
	// Details contains additional error details (optional).
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-06-01T18:30:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the cart view returned by cart endpoints: the items in
// insertion order plus the derived aggregates.
//
// @Description Cart contents with derived subtotal and item count
type CartResponse struct {
	SessionID  string           `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Items      []model.CartItem `json:"items"`
	Subtotal   float64          `json:"subtotal" example:"33.00"`
	TotalItems int              `json:"total_items" example:"3"`
} // @name CartResponse

// AddItemResponse reports the id of a newly added cart line along with
// the refreshed cart view.
//
// @Description Result of adding a cart line
type AddItemResponse struct {
	ItemID string       `json:"item_id"`
	Cart   CartResponse `json:"cart"`
} // @name AddItemResponse

// OrderStatsResponse summarizes submitted orders for the admin dashboard.
//
// @Description Aggregate order statistics
type OrderStatsResponse struct {
	TotalOrders  int64            `json:"total_orders" example:"128"`
	TotalRevenue float64          `json:"total_revenue" example:"4830.50"`
	ByStatus     map[string]int64 `json:"by_status"`
} // @name OrderStatsResponse
