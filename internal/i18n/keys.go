// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates a wrong administrative passphrase.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyOrderNotFound indicates an unknown order id.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationCustomer indicates incomplete checkout customer data.
	ErrKeyValidationCustomer = "error.validation.customer"
	// ErrKeyValidationCartItem indicates an invalid cart item payload.
	ErrKeyValidationCartItem = "error.validation.cart_item"
	// ErrKeyCatalogUnavailable indicates the catalog could not be loaded.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyEmptyCart indicates a checkout attempt with an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeySubmissionFailed indicates order submission failed; the cart is preserved.
	ErrKeySubmissionFailed = "error.submission_failed"
	// ErrKeyInvalidStatusTransition indicates a disallowed order status change.
	ErrKeyInvalidStatusTransition = "error.invalid_status_transition"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderConfirmed indicates a successfully submitted order.
	SuccessKeyOrderConfirmed = "success.order_confirmed"
)
