package usecase

import (
	"context"
	"log/slog"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type onboardingService struct {
	resolver  tenancy.SessionResolver
	directory tenancy.Directory
	logger    *slog.Logger
}

func NewOnboardingService(resolver tenancy.SessionResolver, directory tenancy.Directory, logger *slog.Logger) OnboardingUseCase {
	return &onboardingService{
		resolver:  resolver,
		directory: directory,
		logger:    logger,
	}
}

// Onboard creates the caller's tenant and owner membership. Name and slug
// default to values derived from the caller's email when not supplied.
// Calling it again for an onboarded principal returns the existing
// membership; a slug collision surfaces domain.ErrConflict so the caller
// can retry with a disambiguated slug.
func (s *onboardingService) Onboard(ctx context.Context, desiredName, desiredSlug string) (*domain.Membership, error) {
	principal, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	name := desiredName
	if name == "" {
		name = tenancy.DeriveName(principal.Email)
	}
	slug := desiredSlug
	if slug == "" {
		slug = tenancy.DeriveSlug(principal.Email)
	}

	return s.directory.CreateTenantAndOwner(ctx, *principal, name, slug)
}
