package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/academia/users-service/internal/core/domain"
)

type stubSigner struct {
	lastRole string
}

func (s *stubSigner) Sign(userID, name, email, role string, expiresAt time.Time) (string, error) {
	s.lastRole = role
	return "signed-token-for-" + userID, nil
}

type stubSessions struct {
	stored  map[string]string
	revoked []string
}

func newStubSessions() *stubSessions {
	return &stubSessions{stored: make(map[string]string)}
}

func (s *stubSessions) Store(_ context.Context, userID, token string, _ time.Time) error {
	s.stored[userID] = token
	return nil
}

func (s *stubSessions) Revoke(_ context.Context, userID string) error {
	s.revoked = append(s.revoked, userID)
	return nil
}

func seedAccount(t *testing.T, repo *stubUserRepo, email, password string, mustChange bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user := &domain.User{
		Name:               "Carla",
		Role:               "Instructor",
		Email:              email,
		PasswordHash:       string(hash),
		MustChangePassword: mustChange,
		IsActive:           true,
	}
	created, err := repo.Insert(context.Background(), user)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return created
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	signer := &stubSigner{}
	sessions := newStubSessions()
	svc := NewAuthService(repo, signer, sessions, time.Hour, zerolog.Nop())

	seeded := seedAccount(t, repo, "carla@academia.edu", "Secret1a", true)

	before := time.Now().UTC()
	result, err := svc.Login(context.Background(), "carla@academia.edu", "Secret1a")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if result.Token != "signed-token-for-"+seeded.ID {
		t.Fatalf("unexpected token: %s", result.Token)
	}
	if signer.lastRole != "Instructor" {
		t.Fatalf("signer must receive the record role, got %q", signer.lastRole)
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("profile must not carry the credential")
	}
	if !result.User.MustChangePassword {
		t.Fatalf("profile must reflect the stored forced-change flag")
	}

	// Expiry is now + TTL.
	if result.ExpiresAt.Before(before.Add(59*time.Minute)) || result.ExpiresAt.After(before.Add(61*time.Minute)) {
		t.Fatalf("unexpected expiry: %v", result.ExpiresAt)
	}

	// Token persisted on the record and cached.
	stored := repo.users[seeded.ID]
	if stored.Token != result.Token {
		t.Fatalf("token must be persisted on the record")
	}
	if sessions.stored[seeded.ID] != result.Token {
		t.Fatalf("token must be cached in the session store")
	}
}

func TestAuthService_Login_WrongPasswordIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubSigner{}, newStubSessions(), time.Hour, zerolog.Nop())

	seedAccount(t, repo, "carla@academia.edu", "Secret1a", false)

	// Comparison is case-sensitive.
	if _, err := svc.Login(context.Background(), "carla@academia.edu", "secret1a"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailIsGeneric(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubSigner{}, newStubSessions(), time.Hour, zerolog.Nop())

	// Same error as a wrong password: the caller cannot tell which field failed.
	if _, err := svc.Login(context.Background(), "ghost@academia.edu", "Secret1a"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), &stubSigner{}, newStubSessions(), time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", "Secret1a"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "carla@academia.edu", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubSigner{}, newStubSessions(), time.Hour, zerolog.Nop())

	seeded := seedAccount(t, repo, "carla@academia.edu", "Secret1a", false)
	repo.users[seeded.ID].IsActive = false

	if _, err := svc.Login(context.Background(), "carla@academia.edu", "Secret1a"); err != domain.ErrInvalidCredentials {
		t.Fatalf("deactivated accounts must not log in, got %v", err)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	sessions := newStubSessions()
	svc := NewAuthService(newStubUserRepo(), &stubSigner{}, sessions, time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "42"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "42" {
		t.Fatalf("session must be revoked: %+v", sessions.revoked)
	}
}
