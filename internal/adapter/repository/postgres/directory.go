package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

const membershipColumns = `
	u.id, u.tenant_id, u.role, u.email, u.full_name, u.created_at, u.updated_at,
	t.id, t.name, t.slug, t.subscription_status, t.subscription_plan, t.created_at, t.updated_at
`

// Directory implements tenancy.Directory against the users and tenants
// tables. Lookups run on the pool directly: membership resolution happens
// before any tenant scope exists, which is why the users policy admits
// unscoped reads while the tenant-owned tables stay closed without a scope.
type Directory struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewDirectory(db *sql.DB, logger *slog.Logger) *Directory {
	return &Directory{db: db, logger: logger}
}

func (d *Directory) LookupMembership(ctx context.Context, principalID uuid.UUID) (*domain.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE u.id = $1
	`

	m, err := scanMembership(d.db.QueryRowContext(ctx, query, principalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // authenticated but not onboarded
		}
		return nil, fmt.Errorf("lookup membership: %w", err)
	}
	return m, nil
}

func (d *Directory) LookupTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `
		SELECT id, name, slug, subscription_status, subscription_plan, created_at, updated_at
		FROM tenants
		WHERE slug = $1
	`

	var t domain.Tenant
	err := d.db.QueryRowContext(ctx, query, slug).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.SubscriptionStatus,
		&t.SubscriptionPlan,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup tenant by slug: %w", err)
	}
	return &t, nil
}

func (d *Directory) ListMembers(ctx context.Context, tenantID uuid.UUID) ([]domain.MemberSummary, error) {
	query := `
		SELECT id, email, full_name, role, created_at
		FROM users
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := d.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []domain.MemberSummary
	for rows.Next() {
		var m domain.MemberSummary
		if err := rows.Scan(&m.ID, &m.Email, &m.FullName, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// CreateTenantAndOwner creates the tenant row and the owner membership in a
// single transaction, so a failed membership insert can never leave an
// orphaned tenant behind. Calling it again for an already-onboarded
// principal returns the existing membership unchanged, including when two
// calls for the same principal race: the loser of the insert race rolls its
// tenant back and returns the winner's row.
func (d *Directory) CreateTenantAndOwner(ctx context.Context, principal domain.Principal, name, slug string) (*domain.Membership, error) {
	existing, err := d.LookupMembership(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin onboarding transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	tenant := domain.Tenant{
		ID:                 uuid.New(),
		Name:               name,
		Slug:               slug,
		SubscriptionStatus: domain.SubscriptionTrial,
		SubscriptionPlan:   domain.PlanStarter,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	insertTenant := `
		INSERT INTO tenants (id, name, slug, subscription_status, subscription_plan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, insertTenant,
		tenant.ID,
		tenant.Name,
		tenant.Slug,
		tenant.SubscriptionStatus,
		tenant.SubscriptionPlan,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			// The slug may be taken by a concurrent call for this same
			// principal (both derive the same slug); only a foreign holder
			// is a real conflict.
			_ = tx.Rollback()
			winner, lookupErr := d.LookupMembership(ctx, principal.ID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if winner != nil {
				return winner, nil
			}
			return nil, fmt.Errorf("%w: slug %q already in use", domain.ErrConflict, slug)
		}
		return nil, fmt.Errorf("insert tenant: %w", err)
	}

	membership := domain.Membership{
		ID:        principal.ID,
		TenantID:  tenant.ID,
		Role:      domain.RoleOwner,
		Email:     principal.Email,
		Tenant:    tenant,
		CreatedAt: now,
		UpdatedAt: now,
	}

	insertMembership := `
		INSERT INTO users (id, tenant_id, role, email, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, insertMembership,
		membership.ID,
		membership.TenantID,
		membership.Role,
		membership.Email,
		membership.FullName,
		membership.CreatedAt,
		membership.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			// Lost a concurrent onboarding race for this principal. Drop our
			// tenant and return the winner's membership, keeping the call
			// idempotent under concurrency.
			_ = tx.Rollback()
			winner, lookupErr := d.LookupMembership(ctx, principal.ID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if winner != nil {
				return winner, nil
			}
			return nil, fmt.Errorf("%w: principal already onboarded", domain.ErrConflict)
		}
		return nil, fmt.Errorf("insert membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit onboarding transaction: %w", err)
	}

	d.logger.Info("tenant onboarded",
		"tenant_id", tenant.ID,
		"slug", tenant.Slug,
		"owner_id", membership.ID,
	)
	return &membership, nil
}

func scanMembership(row *sql.Row) (*domain.Membership, error) {
	var m domain.Membership
	if err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.Role,
		&m.Email,
		&m.FullName,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Tenant.ID,
		&m.Tenant.Name,
		&m.Tenant.Slug,
		&m.Tenant.SubscriptionStatus,
		&m.Tenant.SubscriptionPlan,
		&m.Tenant.CreatedAt,
		&m.Tenant.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
