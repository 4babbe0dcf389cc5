package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials for opening a portal session.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the signed-in account.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresIn   int64           `json:"expires_in"`
	User        UserCredentials `json:"user"`
}

// JWTClaims represents the JWT payload of a portal session.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
