package service

import (
	"context"
	"testing"
	"time"

	"github.com/pocketledger/pocketledger/internal/auth"
	"github.com/pocketledger/pocketledger/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() *AuthService {
	store := storage.NewMemoryStorage()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(store, jwtManager, bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	u, err := s.Register(ctx, "Alice", "alice@example.com", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.ID == "" {
		t.Error("expected store-assigned id")
	}
	if u.PasswordHash == "password1" {
		t.Error("password must not be stored in plain text")
	}
	if err := auth.CheckPassword(u.PasswordHash, "password1"); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.Register(ctx, "Alice Again", "alice@example.com", "password2")
	if err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_EmailCaseNormalized(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", "Alice@Example.com", "password1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Register(ctx, "Imposter", "alice@example.com", "password2"); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken for differently-cased duplicate, got %v", err)
	}

	if _, _, err := s.Login(ctx, "ALICE@EXAMPLE.COM", "password1"); err != nil {
		t.Errorf("expected login with differently-cased email to succeed, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "", "a@b.com", "password1"); err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := s.Register(ctx, "Alice", "", "password1"); err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
	if _, err := s.Register(ctx, "Alice", "a@b.com", ""); err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
	if _, err := s.Register(ctx, "Alice", "a@b.com", "short"); err != ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	registered, err := s.Register(ctx, "Alice", "alice@example.com", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, u, err := s.Login(ctx, "alice@example.com", "password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, u.ID)
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		t.Fatalf("token failed validation: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("token identity %s does not match registered user %s", claims.UserID, registered.ID)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newAuthService()

	_, _, err := s.Login(context.Background(), "nobody@example.com", "password1")
	if err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", "alice@example.com", "password1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := s.Login(ctx, "alice@example.com", "wrong-password")
	if err != ErrInvalidPassword {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}
