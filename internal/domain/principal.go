package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Principal is an authenticated identity as produced by the session
// resolver. It is immutable for the lifetime of a request and carries no
// tenant information; tenancy is resolved separately through the directory.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Account is the credentials record backing a principal. It is owned by the
// auth layer and is never tenant-scoped: an account exists before onboarding
// creates a membership for it.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"` // Not exposed in API responses
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Store(ctx context.Context, a *Account) error
}
