package ports

import "time"

// TokenSigner produces an opaque bearer token for a record's identity claims.
// The core never parses the token's internal structure.
type TokenSigner interface {
	Sign(userID, name, email, role string, expiresAt time.Time) (string, error)
}
