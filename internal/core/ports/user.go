package ports

import (
	"context"

	"github.com/stayops/hotel-management-api/internal/core/domain/user"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
