package tenancy

import (
	"context"
	"log/slog"

	"github.com/flickerrrrrz/iprawnik/internal/adapter/metrics"
	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

// Operation is a caller-supplied data operation. It receives a context
// carrying the caller's membership and a channel already bound to the
// membership's tenant.
type Operation func(ctx context.Context, ch Channel) error

// Scoper composes the per-request isolation pipeline: resolve principal,
// look up membership, bind a fresh scoped channel, run the operation. The
// scoper holds no per-request state; a channel is bound immediately before
// each operation and released immediately after, never cached.
type Scoper struct {
	resolver  SessionResolver
	directory Directory
	binder    Binder
	logger    *slog.Logger
	metrics   *metrics.TenancyMetrics
}

func NewScoper(resolver SessionResolver, directory Directory, binder Binder, logger *slog.Logger, m *metrics.TenancyMetrics) *Scoper {
	return &Scoper{
		resolver:  resolver,
		directory: directory,
		binder:    binder,
		logger:    logger,
		metrics:   m,
	}
}

// WithTenantScope runs op against a channel bound to the caller's tenant.
// Failure modes, in order: domain.ErrUnauthenticated when no session is
// present, domain.ErrNoTenant when the principal never onboarded,
// domain.ErrScope when the store rejects the binding. Whatever op returns is
// propagated unchanged; this layer never retries.
func (s *Scoper) WithTenantScope(ctx context.Context, op Operation) error {
	principal, err := s.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	if principal == nil {
		if s.metrics != nil {
			s.metrics.ScopeDenials.WithLabelValues("unauthenticated").Inc()
		}
		return domain.ErrUnauthenticated
	}

	membership, err := s.directory.LookupMembership(ctx, principal.ID)
	if err != nil {
		return err
	}
	if membership == nil {
		if s.metrics != nil {
			s.metrics.ScopeDenials.WithLabelValues("no_tenant").Inc()
		}
		return domain.ErrNoTenant
	}

	ch, err := s.binder.Bind(ctx, membership.TenantID)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ScopeBindFailures.Inc()
		}
		s.logger.Error("failed to bind tenant scope",
			"tenant_id", membership.TenantID,
			"principal_id", principal.ID,
			"error", err,
		)
		return err
	}
	if s.metrics != nil {
		s.metrics.ScopeBinds.Inc()
	}

	opErr := op(ContextWithMembership(ctx, membership), ch)

	if err := ch.Release(ctx, opErr); err != nil {
		s.logger.Error("failed to release scoped channel",
			"tenant_id", membership.TenantID,
			"error", err,
		)
		if opErr == nil {
			return err
		}
	}
	return opErr
}

// Membership returns the caller's membership without binding a channel.
// Used by read paths that need tenant metadata but no data access, and by
// callers that must distinguish "no session" from "not onboarded".
func (s *Scoper) Membership(ctx context.Context) (*domain.Membership, error) {
	principal, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	membership, err := s.directory.LookupMembership(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, domain.ErrNoTenant
	}
	return membership, nil
}

// WithTenantScope is the generic form for operations producing a value.
func WithTenantScope[T any](ctx context.Context, s *Scoper, op func(ctx context.Context, ch Channel) (T, error)) (T, error) {
	var result T
	err := s.WithTenantScope(ctx, func(ctx context.Context, ch Channel) error {
		var opErr error
		result, opErr = op(ctx, ch)
		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

type membershipKey struct{}

// ContextWithMembership attaches the resolved membership to the operation
// context.
func ContextWithMembership(ctx context.Context, m *domain.Membership) context.Context {
	return context.WithValue(ctx, membershipKey{}, m)
}

// MembershipFromContext returns the membership the scoper attached, or nil
// outside a scoped operation.
func MembershipFromContext(ctx context.Context) *domain.Membership {
	m, _ := ctx.Value(membershipKey{}).(*domain.Membership)
	return m
}
