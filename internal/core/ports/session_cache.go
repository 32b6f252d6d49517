package ports

import (
	"context"
	"time"
)

// SessionCache tracks the active token per user. Failures here are logged
// and never abort a login; the persisted record remains the source of truth.
type SessionCache interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	Revoke(ctx context.Context, userID string) error
}
