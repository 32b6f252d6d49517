package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/ports"
)

// AuthService implements the login protocol: credential comparison, token
// issuance, and session persistence.
type AuthService struct {
	repo     ports.UserRepository
	signer   ports.TokenSigner
	sessions ports.SessionCache
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.UserRepository, signer ports.TokenSigner, sessions ports.SessionCache, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		repo:     repo,
		signer:   signer,
		sessions: sessions,
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Login looks the record up by email and compares the submitted password
// against the stored bcrypt hash. A missing record and a wrong password both
// yield the same generic error so the caller cannot tell which field failed.
// On success the token and its expiry are persisted on the record and the
// safe profile (no credential) is returned.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := s.now().UTC().Add(s.tokenTTL)
	token, err := s.signer.Sign(user.ID, user.Name, user.Email, user.Role, expiresAt)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to sign token")
		return nil, err
	}

	if err := s.repo.UpdateToken(ctx, user.ID, token, expiresAt); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to persist session token")
		return nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.Store(ctx, user.ID, token, expiresAt); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("session cache write failed")
		}
	}

	profile := *user
	profile.PasswordHash = ""
	profile.Token = ""

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: &profile}, nil
}

// Logout is stateless on the server beyond dropping the cached session entry;
// the bearer token itself expires on its own.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if s.sessions == nil || userID == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("session cache revoke failed")
	}
	return nil
}
