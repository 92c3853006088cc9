package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TenancyMetrics holds all Prometheus metrics for the tenancy layer.
type TenancyMetrics struct {
	ScopeBinds            prometheus.Counter
	ScopeBindFailures     prometheus.Counter
	ScopeDenials          *prometheus.CounterVec
	AuthzDenials          prometheus.Counter
	MembershipCacheHits   prometheus.Counter
	MembershipCacheMisses prometheus.Counter
	RequestsTotal         *prometheus.CounterVec
}

// NewTenancyMetrics initializes and registers the Prometheus metrics.
func NewTenancyMetrics() *TenancyMetrics {
	return &TenancyMetrics{
		ScopeBinds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "tenancy",
			Name:      "scope_binds_total",
			Help:      "Total number of successful tenant scope bindings.",
		}),
		ScopeBindFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "tenancy",
			Name:      "scope_bind_failures_total",
			Help:      "Total number of tenant scope bindings rejected by the store.",
		}),
		ScopeDenials: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "tenancy",
			Name:      "scope_denials_total",
			Help:      "Total number of scoped operations denied before binding.",
		}, []string{"reason"}), // reason: unauthenticated, no_tenant
		AuthzDenials: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "authz",
			Name:      "denials_total",
			Help:      "Total number of role checks that denied an operation.",
		}),
		MembershipCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "directory",
			Name:      "membership_cache_hits_total",
			Help:      "Total number of membership lookups served from cache.",
		}),
		MembershipCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "directory",
			Name:      "membership_cache_misses_total",
			Help:      "Total number of membership lookups that fell through to the store.",
		}),
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iprawnik",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method and status.",
		}, []string{"method", "status"}),
	}
}
