package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates the PostgreSQL-backed account store. Accounts
// are owned by the auth layer and are never tenant-scoped.
func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, email, full_name, password_hash, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Email,
		&a.FullName,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find account by ID: %w", err)
	}
	return &a, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, full_name, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID,
		&a.Email,
		&a.FullName,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &a, nil
}

func (r *accountRepository) Store(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (id, email, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Email,
		a.FullName,
		a.PasswordHash,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return fmt.Errorf("store account: %w", err)
	}
	return nil
}
