package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"

	"github.com/mariposa/wedding-rsvp/internal/domain"
	"github.com/mariposa/wedding-rsvp/internal/repo/postgres"
	"github.com/mariposa/wedding-rsvp/pkg/auth"
	"github.com/mariposa/wedding-rsvp/pkg/config"
	"github.com/mariposa/wedding-rsvp/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPassword maps to 401.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrCredentialsNotFound means the bootstrap never seeded the singleton
	// credential row. That is a misconfiguration, not a bad login.
	ErrCredentialsNotFound = errors.New("admin credentials not found")
)

type AuthService interface {
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error)
	EnsureCredential(ctx context.Context) error
}

type authService struct {
	adminRepo postgres.AdminRepo
	cfg       config.AuthConfig
}

func NewAuthService(adminRepo postgres.AdminRepo, cfg config.AuthConfig) AuthService {
	return &authService{adminRepo: adminRepo, cfg: cfg}
}

// EnsureCredential seeds the singleton admin credential on first startup.
func (s *authService) EnsureCredential(ctx context.Context) error {
	cred, err := s.adminRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load admin credential: %w", err)
	}
	if cred != nil {
		return nil
	}

	hash, err := argon2id.CreateHash(s.cfg.AdminPassword, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := s.adminRepo.Create(ctx, hash); err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	logger.Info("Seeded admin credential")
	return nil
}

// Login verifies the shared admin password and issues a bearer token.
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	cred, err := s.adminRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin credential: %w", err)
	}
	if cred == nil {
		return nil, ErrCredentialsNotFound
	}

	valid, err := argon2id.ComparePasswordAndHash(req.Password, cred.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, ErrInvalidPassword
	}

	token, err := auth.NewAdminToken(cred.ID, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &domain.LoginResponse{Token: token}, nil
}
