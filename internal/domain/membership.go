package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role defines the permission level of a member within a tenant.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleLawyer    Role = "lawyer"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleLawyer, RoleAssistant:
		return true
	}
	return false
}

// In reports whether r is contained in roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// Membership binds exactly one principal to exactly one tenant. Its ID
// equals the principal's ID: a user belongs to at most one tenant. The
// embedded Tenant snapshot is always populated by the directory; a
// membership never references a tenant that does not exist.
type Membership struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Tenant    Tenant    `json:"tenant"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberSummary is a single row of the admin-facing member listing.
type MemberSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
