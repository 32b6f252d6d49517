package ports

import (
	"context"
	"time"

	"github.com/academia/users-service/internal/core/domain"
)

// UserService is the lifecycle contract for staff user records. Mutating
// operations thread the caller's role claims explicitly; the service never
// reads ambient authorization state.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail returns the record including the credential hash; it backs
	// the login flow.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListVisible filters active records by the caller's privilege. An
	// unrecognized claim set yields an empty list, not an error.
	ListVisible(ctx context.Context, claims []string) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User, tempPassword string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User, claims []string) (*domain.User, error)
	Delete(ctx context.Context, id string, claims []string) error
	ChangePassword(ctx context.Context, id, newPassword string) error
	IssueToken(ctx context.Context, id, token string, expiresAt time.Time) error
}
