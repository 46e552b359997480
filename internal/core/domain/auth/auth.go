package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the JWT claims carried by access tokens. UserID is the principal
// id all resource ownership is scoped by.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthToken struct {
	AccessToken string `json:"token"`
	ExpiresIn   int64  `json:"expires_in"`
}
