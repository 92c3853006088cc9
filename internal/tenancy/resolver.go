package tenancy

import (
	"context"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

// SessionResolver turns the ambient request state into a verified principal.
// A missing session is a normal state, reported as (nil, nil), not an error.
type SessionResolver interface {
	Resolve(ctx context.Context) (*domain.Principal, error)
}

type principalKey struct{}

// ContextWithPrincipal attaches a verified principal to the context. Called
// by the auth middleware after token validation.
func ContextWithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal attached by the auth
// middleware, or nil when the request carried no valid session.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey{}).(*domain.Principal)
	return p
}

// ContextResolver resolves the principal the auth middleware stored on the
// request context.
type ContextResolver struct{}

func NewContextResolver() *ContextResolver { return &ContextResolver{} }

func (r *ContextResolver) Resolve(ctx context.Context) (*domain.Principal, error) {
	return PrincipalFromContext(ctx), nil
}
