package ports

import (
	"context"

	"github.com/stayops/hotel-management-api/internal/core/domain/auth"
)

// AuthService issues and validates access tokens. It supplies the stable
// principal id that scopes all resource reads and writes.
type AuthService interface {
	Signup(ctx context.Context, req *auth.SignupRequest) (*auth.AuthToken, error)
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthToken, error)
	ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error)
}
