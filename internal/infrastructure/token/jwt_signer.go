// Package token adapts the opaque token-signer port to HS256 JWTs.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTSigner issues HS256-signed bearer tokens carrying the record's identity
// claims. The core treats the result as an opaque string.
type JWTSigner struct {
	secret string
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: secret}
}

func (s *JWTSigner) Sign(userID, name, email, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"name":  name,
		"email": email,
		"role":  role,
		"jti":   uuid.NewString(),
		"exp":   expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
