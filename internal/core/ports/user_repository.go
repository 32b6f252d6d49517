package ports

import (
	"context"
	"time"

	"github.com/academia/users-service/internal/core/domain"
)

// UserRepository defines the persistence port for staff user records.
// Lookups by email see only active records; soft-deleted records stay in
// storage but disappear from listings and login.
type UserRepository interface {
	FindAllActive(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) error
	// UpdatePassword stores a new credential hash and clears the
	// forced-change flag in the same write.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateToken(ctx context.Context, id, token string, expiresAt time.Time) error
}
