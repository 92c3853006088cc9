package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/domain/mocks"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

func memberFixture(role domain.Role) (*domain.Principal, *mocks.MockDirectory) {
	principal := &domain.Principal{ID: uuid.New(), Email: "user@firm.law"}
	tenantID := uuid.New()
	dir := &mocks.MockDirectory{
		Memberships: map[uuid.UUID]*domain.Membership{
			principal.ID: {
				ID:       principal.ID,
				TenantID: tenantID,
				Role:     role,
				Tenant:   domain.Tenant{ID: tenantID, Slug: "firm"},
			},
		},
		Members: []domain.MemberSummary{
			{ID: uuid.New(), Email: "newest@firm.law", CreatedAt: time.Now()},
			{ID: principal.ID, Email: "user@firm.law"},
		},
	}
	return principal, dir
}

func newMemberService(principal *domain.Principal, dir *mocks.MockDirectory) MemberUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := &mocks.MockResolver{Principal: principal}
	scoper := tenancy.NewScoper(resolver, dir, &mocks.MockBinder{}, logger, nil)
	guard := tenancy.NewGuard(dir)
	return NewMemberService(scoper, guard, dir, logger, nil)
}

func TestMemberService_List(t *testing.T) {
	t.Run("Admin Sees Members", func(t *testing.T) {
		principal, dir := memberFixture(domain.RoleAdmin)
		svc := newMemberService(principal, dir)

		members, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(members) != 2 {
			t.Errorf("expected 2 members, got %d", len(members))
		}
	})

	t.Run("Owner Sees Members", func(t *testing.T) {
		principal, dir := memberFixture(domain.RoleOwner)
		svc := newMemberService(principal, dir)

		if _, err := svc.List(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Lawyer Is Forbidden", func(t *testing.T) {
		principal, dir := memberFixture(domain.RoleLawyer)
		svc := newMemberService(principal, dir)

		_, err := svc.List(context.Background())
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if dir.ListCalls != 0 {
			t.Error("directory listing must not be consulted for a denied caller")
		}
	})

	t.Run("Assistant Is Forbidden", func(t *testing.T) {
		principal, dir := memberFixture(domain.RoleAssistant)
		svc := newMemberService(principal, dir)

		_, err := svc.List(context.Background())
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("No Session", func(t *testing.T) {
		_, dir := memberFixture(domain.RoleAdmin)
		svc := newMemberService(nil, dir)

		_, err := svc.List(context.Background())
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("Not Onboarded", func(t *testing.T) {
		principal := &domain.Principal{ID: uuid.New()}
		svc := newMemberService(principal, &mocks.MockDirectory{})

		_, err := svc.List(context.Background())
		if !errors.Is(err, domain.ErrNoTenant) {
			t.Fatalf("expected ErrNoTenant, got %v", err)
		}
	})
}

func TestMemberService_Current(t *testing.T) {
	principal, dir := memberFixture(domain.RoleAssistant)
	svc := newMemberService(principal, dir)

	membership, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if membership.ID != principal.ID {
		t.Error("wrong membership returned")
	}
	if membership.Tenant.Slug != "firm" {
		t.Error("tenant snapshot missing from membership")
	}
}
