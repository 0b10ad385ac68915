// Package dto defines Data Transfer Objects for authentication.
package dto

// AdminLoginRequest represents the JSON request body for the admin login
// endpoint. The storefront has a single administrative credential; the
// password is verified against a bcrypt hash, never a compiled-in constant.
//
// @Description Request to authenticate as the store administrator
// @Example {"password": "s3cr3t-passphrase"}
type AdminLoginRequest struct {
	// Password is the administrative passphrase.
	Password string `json:"password" binding:"required,min=6" example:"s3cr3t-passphrase"`
} // @name AdminLoginRequest

// Validate performs custom validation on the login request.
func (r *AdminLoginRequest) Validate() error {
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}

// AdminLoginResponse represents the JSON response body for the admin
// login endpoint.
//
// @Description Successful authentication response with a session token
type AdminLoginResponse struct {
	// Token is the JWT session token for the admin surface.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"3600"`
} // @name AdminLoginResponse

// AdminClaims represents the verified identity carried by an admin
// session token.
type AdminClaims struct {
	Subject string `json:"subject"`
}
