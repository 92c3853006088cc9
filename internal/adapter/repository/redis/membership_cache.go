package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/flickerrrrrz/iprawnik/internal/adapter/metrics"
	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

const membershipKeyPrefix = "membership:"

// CachedDirectory decorates a tenancy.Directory with a Redis read-through
// cache of membership lookups. The lookup sits on the hot path of every
// scoped operation, so a short TTL takes one round trip off each request.
// Redis being down is never fatal: lookups fall through to the inner
// directory with a warning.
type CachedDirectory struct {
	inner   tenancy.Directory
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.TenancyMetrics
}

func NewCachedDirectory(inner tenancy.Directory, client *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.TenancyMetrics) *CachedDirectory {
	return &CachedDirectory{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

func (d *CachedDirectory) LookupMembership(ctx context.Context, principalID uuid.UUID) (*domain.Membership, error) {
	key := membershipKeyPrefix + principalID.String()

	payload, err := d.client.Get(ctx, key).Bytes()
	if err == nil {
		var m domain.Membership
		if err := json.Unmarshal(payload, &m); err == nil {
			if d.metrics != nil {
				d.metrics.MembershipCacheHits.Inc()
			}
			return &m, nil
		}
		d.logger.Warn("discarding undecodable membership cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		d.logger.Warn("membership cache read failed, falling back to store", "error", err)
	}

	if d.metrics != nil {
		d.metrics.MembershipCacheMisses.Inc()
	}

	m, err := d.inner.LookupMembership(ctx, principalID)
	if err != nil || m == nil {
		// Never cache the not-onboarded state: onboarding must become
		// visible on the next request.
		return m, err
	}

	if payload, err := json.Marshal(m); err == nil {
		if err := d.client.Set(ctx, key, payload, d.ttl).Err(); err != nil {
			d.logger.Warn("membership cache write failed", "error", err)
		}
	}
	return m, nil
}

func (d *CachedDirectory) LookupTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return d.inner.LookupTenantBySlug(ctx, slug)
}

func (d *CachedDirectory) ListMembers(ctx context.Context, tenantID uuid.UUID) ([]domain.MemberSummary, error) {
	return d.inner.ListMembers(ctx, tenantID)
}

func (d *CachedDirectory) CreateTenantAndOwner(ctx context.Context, principal domain.Principal, name, slug string) (*domain.Membership, error) {
	m, err := d.inner.CreateTenantAndOwner(ctx, principal, name, slug)
	if err != nil {
		return nil, err
	}
	// Drop any stale entry so the fresh membership is observed immediately.
	if err := d.client.Del(ctx, membershipKeyPrefix+principal.ID.String()).Err(); err != nil {
		d.logger.Warn("membership cache invalidation failed", "error", err)
	}
	return m, nil
}
