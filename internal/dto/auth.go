package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // "access" only; refresh is handled by the auth service
	jwt.RegisteredClaims
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
