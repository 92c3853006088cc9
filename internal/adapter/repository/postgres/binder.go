package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

// ChannelBinder implements tenancy.Binder against PostgreSQL row-level
// security. Binding leases a dedicated connection from the pool, opens a
// transaction on it, and sets the tenant marker with a transaction-local
// set_config. The RLS policies filter every statement in the transaction to
// rows of that tenant; a statement issued on an unbound connection sees no
// tenant rows at all.
type ChannelBinder struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewChannelBinder(db *sql.DB, logger *slog.Logger) *ChannelBinder {
	return &ChannelBinder{db: db, logger: logger}
}

func (b *ChannelBinder) Bind(ctx context.Context, tenantID uuid.UUID) (tenancy.BoundChannel, error) {
	conn, err := b.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: lease connection: %v", domain.ErrScope, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: begin transaction: %v", domain.ErrScope, err)
	}

	// is_local = true: the marker lives exactly as long as the transaction,
	// so it cannot survive into the next operation on this connection.
	if _, err := tx.ExecContext(ctx, `SELECT set_config('app.current_tenant_id', $1, true)`, tenantID.String()); err != nil {
		_ = tx.Rollback()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: set tenant marker: %v", domain.ErrScope, err)
	}

	return &scopedChannel{conn: conn, tx: tx, tenantID: tenantID, logger: b.logger}, nil
}

// scopedChannel is the one concrete tenancy.Channel. It lives for a single
// logical operation; Release tears down the transaction and hands the
// connection back to the pool unbound.
type scopedChannel struct {
	conn     *sql.Conn
	tx       *sql.Tx
	tenantID uuid.UUID
	logger   *slog.Logger
}

func (c *scopedChannel) TenantID() uuid.UUID { return c.tenantID }

func (c *scopedChannel) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.tx.ExecContext(ctx, query, args...)
}

func (c *scopedChannel) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.tx.QueryContext(ctx, query, args...)
}

func (c *scopedChannel) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return c.tx.QueryRowContext(ctx, query, args...)
}

func (c *scopedChannel) Release(ctx context.Context, opErr error) error {
	defer func() {
		// Ending the transaction already cleared the transaction-local
		// marker; the reset guards against a future binder ever switching
		// to a session-scoped marker. Runs even when ctx is done.
		if _, err := c.conn.ExecContext(context.WithoutCancel(ctx), `RESET app.current_tenant_id`); err != nil {
			c.logger.Warn("failed to reset tenant marker on release", "error", err)
		}
		_ = c.conn.Close()
	}()

	if opErr != nil {
		if err := c.tx.Rollback(); err != nil {
			return fmt.Errorf("rollback scoped transaction: %w", err)
		}
		return nil
	}
	if err := c.tx.Commit(); err != nil {
		return fmt.Errorf("commit scoped transaction: %w", err)
	}
	return nil
}
