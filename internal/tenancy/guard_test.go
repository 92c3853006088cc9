package tenancy

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

func membershipWithRole(principalID uuid.UUID, role domain.Role) *domain.Membership {
	tenantID := uuid.New()
	return &domain.Membership{
		ID:       principalID,
		TenantID: tenantID,
		Role:     role,
		Tenant:   domain.Tenant{ID: tenantID},
	}
}

func TestGuard_IsAdmin(t *testing.T) {
	// IsAdmin must be exactly HasRole(owner, admin) for every role value,
	// including a freshly onboarded owner.
	tests := []struct {
		role  domain.Role
		admin bool
	}{
		{domain.RoleOwner, true},
		{domain.RoleAdmin, true},
		{domain.RoleLawyer, false},
		{domain.RoleAssistant, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			principalID := uuid.New()
			dir := &stubDirectory{memberships: map[uuid.UUID]*domain.Membership{
				principalID: membershipWithRole(principalID, tt.role),
			}}
			guard := NewGuard(dir)

			admin, err := guard.IsAdmin(context.Background(), principalID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if admin != tt.admin {
				t.Errorf("IsAdmin(%s) = %v, want %v", tt.role, admin, tt.admin)
			}

			hasRole, err := guard.HasRole(context.Background(), principalID, domain.RoleOwner, domain.RoleAdmin)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if admin != hasRole {
				t.Errorf("IsAdmin and HasRole(owner, admin) disagree for %s", tt.role)
			}
		})
	}
}

func TestGuard_NoMembership(t *testing.T) {
	guard := NewGuard(&stubDirectory{})

	admin, err := guard.IsAdmin(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if admin {
		t.Error("a principal without a membership must not hold any role")
	}
}

func TestGuard_VerifyMembership(t *testing.T) {
	principalID := uuid.New()
	membership := membershipWithRole(principalID, domain.RoleLawyer)
	guard := NewGuard(&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{
		principalID: membership,
	}})

	ok, err := guard.VerifyMembership(context.Background(), principalID, membership.TenantID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Error("principal must verify against their own tenant")
	}

	ok, err = guard.VerifyMembership(context.Background(), principalID, uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Error("principal must not verify against a foreign tenant")
	}

	ok, err = guard.VerifyMembership(context.Background(), uuid.New(), membership.TenantID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Error("an unknown principal must not verify against any tenant")
	}
}
