// Package tenancy implements the tenant-isolation layer: resolving a
// principal to its tenant membership, binding a tenant-scoped data channel,
// and gating privileged operations on role checks. Every data access in the
// application goes through a Channel obtained from the Scoper; there is no
// unscoped channel constructor reachable by application code, so "forgot to
// bind" is a compile error rather than a silent global-scope read.
package tenancy

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Channel is a tenant-scoped data-access handle. It is the only parameter
// type repositories accept, and it is created per logical operation: a
// Channel must never be cached or reused across operations, because the
// tenant marker it carries is connection-scoped state.
type Channel interface {
	// TenantID returns the tenant the channel is bound to. Repositories
	// stamp it onto inserted rows.
	TenantID() uuid.UUID

	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BoundChannel is a Channel together with its release handle. Only the
// Scoper sees this interface; operations receive the narrower Channel and
// cannot release or re-bind it.
type BoundChannel interface {
	Channel

	// Release finishes the operation: it commits when opErr is nil, rolls
	// back otherwise, and returns the underlying connection to the pool in
	// an unbound state so it can never carry a stale tenant marker into
	// the next operation.
	Release(ctx context.Context, opErr error) error
}

// Binder establishes the tenant marker on a fresh data channel. The binder
// does not validate that the tenant exists; the directory guarantees the id
// is drawn from a real membership row.
type Binder interface {
	// Bind leases a connection, attaches the tenant marker, and returns
	// the scoped channel. It fails with domain.ErrScope when the store
	// rejects the marker; in that case no channel is returned and the
	// wrapped operation must not run.
	Bind(ctx context.Context, tenantID uuid.UUID) (BoundChannel, error)
}
