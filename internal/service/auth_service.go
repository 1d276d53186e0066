package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketledger/pocketledger/internal/auth"
	"github.com/pocketledger/pocketledger/internal/models/user"
	"github.com/pocketledger/pocketledger/internal/storage"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("email already in use")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
)

type AuthService struct {
	users      storage.UserStore
	jwtManager *auth.JWTManager
	bcryptCost int
}

func NewAuthService(users storage.UserStore, jwtManager *auth.JWTManager, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// Login returns a signed 7-day token on success. Missing user and wrong
// password are reported separately, matching the documented API contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	email = normalizeEmail(email)

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return "", nil, ErrUserNotFound
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidPassword
	}

	token, _, err := s.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
