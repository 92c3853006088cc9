package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	accounts  domain.AccountRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(accounts domain.AccountRepository, jwtSecret string) AuthUseCase {
	return &authService{
		accounts:  accounts,
		jwtSecret: jwtSecret,
		jwtExpiry: 24 * time.Hour,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !util.CheckPasswordHash(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(account.ID, account.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Signup creates the credentials record only. The new principal has no
// tenant membership yet; the first scoped request fails with ErrNoTenant
// and the client is routed to onboarding.
func (s *authService) Signup(ctx context.Context, email, password, fullName string) (string, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Store(ctx, account); err != nil {
		return "", err
	}

	return util.GenerateToken(account.ID, account.Email, s.jwtSecret, s.jwtExpiry)
}
