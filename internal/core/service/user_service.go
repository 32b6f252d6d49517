package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/domain/rules"
	"github.com/academia/users-service/internal/core/ports"
)

// UserService orchestrates the record lifecycle: it wraps the access policy
// and the record validator around the persistence port.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, now: time.Now}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail returns the record including the credential hash. Only active
// records resolve; it backs the login flow.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// ListVisible returns the active records the caller may see. Callers with no
// recognized role claim get an empty list.
func (s *UserService) ListVisible(ctx context.Context, claims []string) ([]domain.User, error) {
	users, err := s.repo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return domain.FilterVisible(domain.PrivilegeFromClaims(claims), users), nil
}

// Create validates the record and the temporary password, hashes the
// credential, and persists the record with the forced-change flag set
// regardless of the input value.
func (s *UserService) Create(ctx context.Context, user *domain.User, tempPassword string) (*domain.User, error) {
	if r := rules.ValidateUser(user, s.now().UTC()); r.IsFailure() {
		return nil, domain.NewValidationError(r.Message())
	}
	if r := rules.ValidatePassword(tempPassword); r.IsFailure() {
		return nil, domain.NewValidationError(r.Message())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hash)
	user.MustChangePassword = true
	user.IsActive = true

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update gates role escalation against the caller's claims, revalidates the
// full record, and persists it. A blank incoming role preserves the stored
// one before either check runs.
func (s *UserService) Update(ctx context.Context, user *domain.User, claims []string) (*domain.User, error) {
	if strings.TrimSpace(user.Role) == "" {
		existing, err := s.repo.FindByID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		user.Role = existing.Role
	}

	if !domain.PrivilegeFromClaims(claims).CanAssignRole(user.Role) {
		s.logger.Warn().Str("user_id", user.ID).Strs("claims", claims).Msg("role escalation denied")
		return nil, domain.ErrAccessDenied
	}

	if r := rules.ValidateUser(user, s.now().UTC()); r.IsFailure() {
		return nil, domain.NewValidationError(r.Message())
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update user")
		return nil, err
	}
	return updated, nil
}

// Delete soft-deactivates a record after the existence lookup. Records whose
// stored role is SuperAdmin can never be deleted, whatever the caller holds.
func (s *UserService) Delete(ctx context.Context, id string, claims []string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanDeleteRecord(existing.Role) {
		s.logger.Warn().Str("user_id", id).Strs("claims", claims).Msg("delete of protected record rejected")
		return domain.ErrProtectedRecord
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to deactivate user")
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}

// ChangePassword validates strength, hashes the new credential, and persists
// it. The repository clears the forced-change flag in the same write.
func (s *UserService) ChangePassword(ctx context.Context, id, newPassword string) error {
	if r := rules.ValidatePassword(newPassword); r.IsFailure() {
		return domain.NewValidationError(r.Message())
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update password")
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("password changed")
	return nil
}

// IssueToken attaches a session token and expiry to a record. An id that does
// not resolve is an invalid argument, not a missing resource.
func (s *UserService) IssueToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == domain.ErrUserNotFound {
			return domain.NewValidationError("El usuario indicado no existe.")
		}
		return err
	}
	return s.repo.UpdateToken(ctx, id, token, expiresAt)
}
