package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatterStatus is the lifecycle state of a matter (a case file).
type MatterStatus string

const (
	MatterActive   MatterStatus = "active"
	MatterPending  MatterStatus = "pending"
	MatterClosed   MatterStatus = "closed"
	MatterArchived MatterStatus = "archived"
)

// Valid reports whether s is one of the enumerated matter statuses.
func (s MatterStatus) Valid() bool {
	switch s {
	case MatterActive, MatterPending, MatterClosed, MatterArchived:
		return true
	}
	return false
}

// Matter represents a single case handled by the firm.
type Matter struct {
	ID          uuid.UUID    `json:"id"`
	TenantID    uuid.UUID    `json:"tenant_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ClientName  string       `json:"client_name"`
	ClientEmail string       `json:"client_email,omitempty"`
	ClientPhone string       `json:"client_phone,omitempty"`
	Status      MatterStatus `json:"status"`
	MatterType  string       `json:"matter_type,omitempty"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// MatterUpdate carries the mutable fields of a matter; nil fields are left
// unchanged.
type MatterUpdate struct {
	Title       *string
	Description *string
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	Status      *MatterStatus
	MatterType  *string
	AssignedTo  *uuid.UUID
}
