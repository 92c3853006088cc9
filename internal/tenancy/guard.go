package tenancy

import (
	"context"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

// Guard answers capability questions about a principal. All checks are pure
// reads through the directory's membership lookup; the guard never mutates
// and never binds a channel.
type Guard struct {
	directory Directory
}

func NewGuard(directory Directory) *Guard {
	return &Guard{directory: directory}
}

// HasRole reports whether the principal's membership role is one of roles.
// A principal with no membership has no role.
func (g *Guard) HasRole(ctx context.Context, principalID uuid.UUID, roles ...domain.Role) (bool, error) {
	membership, err := g.directory.LookupMembership(ctx, principalID)
	if err != nil {
		return false, err
	}
	if membership == nil {
		return false, nil
	}
	return membership.Role.In(roles...), nil
}

// IsAdmin reports whether the principal holds the owner or admin role.
func (g *Guard) IsAdmin(ctx context.Context, principalID uuid.UUID) (bool, error) {
	return g.HasRole(ctx, principalID, domain.RoleOwner, domain.RoleAdmin)
}

// VerifyMembership reports whether the principal belongs to the given
// tenant. This is the sole check preventing a principal from being scoped
// into a tenant they are not a member of.
func (g *Guard) VerifyMembership(ctx context.Context, principalID, tenantID uuid.UUID) (bool, error) {
	membership, err := g.directory.LookupMembership(ctx, principalID)
	if err != nil {
		return false, err
	}
	if membership == nil {
		return false, nil
	}
	return membership.TenantID == tenantID, nil
}
