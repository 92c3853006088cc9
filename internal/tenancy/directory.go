package tenancy

import (
	"context"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

// Directory is the canonical source of tenant membership. Every role or
// ownership decision in the service derives from its lookups; no other code
// path re-derives membership from separately fetched data.
type Directory interface {
	// LookupMembership joins the membership row with its tenant in a
	// single round trip. It returns (nil, nil) when the principal has
	// authenticated but never completed onboarding; callers must treat
	// that as "route to onboarding", not as a failure.
	LookupMembership(ctx context.Context, principalID uuid.UUID) (*domain.Membership, error)

	// LookupTenantBySlug returns (nil, nil) when no tenant has the slug.
	LookupTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error)

	// ListMembers returns the tenant's members, newest first. Privileged:
	// callers must have verified an admin or owner role via the Guard
	// before calling; the directory itself does not re-check.
	ListMembers(ctx context.Context, tenantID uuid.UUID) ([]domain.MemberSummary, error)

	// CreateTenantAndOwner is the onboarding path: it creates the tenant
	// row and the owner membership in one transaction. It is idempotent
	// per principal: an existing membership is returned unchanged.
	// A slug collision fails with domain.ErrConflict. This is
	// the only path that assigns the owner role.
	CreateTenantAndOwner(ctx context.Context, principal domain.Principal, name, slug string) (*domain.Membership, error)
}
