package usecase

import (
	"context"
	"log/slog"

	"github.com/flickerrrrrz/iprawnik/internal/adapter/metrics"
	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type memberService struct {
	scoper    *tenancy.Scoper
	guard     *tenancy.Guard
	directory tenancy.Directory
	logger    *slog.Logger
	metrics   *metrics.TenancyMetrics
}

func NewMemberService(scoper *tenancy.Scoper, guard *tenancy.Guard, directory tenancy.Directory, logger *slog.Logger, m *metrics.TenancyMetrics) MemberUseCase {
	return &memberService{
		scoper:    scoper,
		guard:     guard,
		directory: directory,
		logger:    logger,
		metrics:   m,
	}
}

// Current returns the caller's membership with its tenant snapshot.
func (s *memberService) Current(ctx context.Context) (*domain.Membership, error) {
	return s.scoper.Membership(ctx)
}

// List returns the tenant's members, newest first. Owner or admin role
// required; everyone else gets ErrForbidden before the directory listing is
// ever consulted.
func (s *memberService) List(ctx context.Context) ([]domain.MemberSummary, error) {
	membership, err := s.scoper.Membership(ctx)
	if err != nil {
		return nil, err
	}

	admin, err := s.guard.IsAdmin(ctx, membership.ID)
	if err != nil {
		return nil, err
	}
	if !admin {
		if s.metrics != nil {
			s.metrics.AuthzDenials.Inc()
		}
		s.logger.Warn("member listing denied",
			"principal_id", membership.ID,
			"role", membership.Role,
		)
		return nil, domain.ErrForbidden
	}

	return s.directory.ListMembers(ctx, membership.TenantID)
}
