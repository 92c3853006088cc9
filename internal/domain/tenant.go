package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the billing state of a tenant. It is mutated only by
// the billing collaborator; this layer treats it as read-only metadata.
type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// SubscriptionPlan identifies the tenant's pricing tier.
type SubscriptionPlan string

const (
	PlanStarter      SubscriptionPlan = "starter"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// Tenant represents one law firm owning an isolated data partition. Tenants
// are created once at onboarding and never deleted.
type Tenant struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Slug               string             `json:"slug"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	SubscriptionPlan   SubscriptionPlan   `json:"subscription_plan"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
