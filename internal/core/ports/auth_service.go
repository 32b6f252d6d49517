package ports

import (
	"context"
	"time"

	"github.com/academia/users-service/internal/core/domain"
)

// LoginResult is the outcome of a successful login: the bearer token, its
// expiry, and a safe projection of the record (credential hash cleared).
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, userID string) error
}
