package tenancy

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
)

type stubResolver struct {
	principal *domain.Principal
	err       error
}

func (r *stubResolver) Resolve(ctx context.Context) (*domain.Principal, error) {
	return r.principal, r.err
}

type stubDirectory struct {
	memberships map[uuid.UUID]*domain.Membership
	err         error
}

func (d *stubDirectory) LookupMembership(ctx context.Context, principalID uuid.UUID) (*domain.Membership, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.memberships[principalID], nil
}

func (d *stubDirectory) LookupTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return nil, nil
}

func (d *stubDirectory) ListMembers(ctx context.Context, tenantID uuid.UUID) ([]domain.MemberSummary, error) {
	return nil, nil
}

func (d *stubDirectory) CreateTenantAndOwner(ctx context.Context, principal domain.Principal, name, slug string) (*domain.Membership, error) {
	return nil, errors.New("not implemented")
}

type stubChannel struct {
	tenantID     uuid.UUID
	released     bool
	releasedWith error
	releaseErr   error
}

func (c *stubChannel) TenantID() uuid.UUID { return c.tenantID }

func (c *stubChannel) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}

func (c *stubChannel) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (c *stubChannel) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func (c *stubChannel) Release(ctx context.Context, opErr error) error {
	c.released = true
	c.releasedWith = opErr
	return c.releaseErr
}

type stubBinder struct {
	mu       sync.Mutex
	bindErr  error
	channels []*stubChannel
}

func (b *stubBinder) Bind(ctx context.Context, tenantID uuid.UUID) (BoundChannel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bindErr != nil {
		return nil, b.bindErr
	}
	ch := &stubChannel{tenantID: tenantID}
	b.channels = append(b.channels, ch)
	return ch, nil
}

func testMembership(principalID uuid.UUID) *domain.Membership {
	tenantID := uuid.New()
	return &domain.Membership{
		ID:       principalID,
		TenantID: tenantID,
		Role:     domain.RoleLawyer,
		Email:    "lawyer@example.com",
		Tenant: domain.Tenant{
			ID:   tenantID,
			Name: "Example Firm",
			Slug: "example-firm",
		},
	}
}

func TestScoper_WithTenantScope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	principalID := uuid.New()

	t.Run("No Session", func(t *testing.T) {
		binder := &stubBinder{}
		s := NewScoper(&stubResolver{}, &stubDirectory{}, binder, logger, nil)

		err := s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			t.Fatal("operation must not run without a session")
			return nil
		})

		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		if len(binder.channels) != 0 {
			t.Error("no channel should be bound for an unauthenticated caller")
		}
	})

	t.Run("No Membership", func(t *testing.T) {
		binder := &stubBinder{}
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{},
			binder,
			logger,
			nil,
		)

		err := s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			t.Fatal("operation must not run without a membership")
			return nil
		})

		if !errors.Is(err, domain.ErrNoTenant) {
			t.Fatalf("expected ErrNoTenant, got %v", err)
		}
		if len(binder.channels) != 0 {
			t.Error("no channel should be bound before onboarding")
		}
	})

	t.Run("Bind Failure Aborts Operation", func(t *testing.T) {
		membership := testMembership(principalID)
		binder := &stubBinder{bindErr: domain.ErrScope}
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
			binder,
			logger,
			nil,
		)

		err := s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			t.Fatal("operation must not run on a failed bind")
			return nil
		})

		if !errors.Is(err, domain.ErrScope) {
			t.Fatalf("expected ErrScope, got %v", err)
		}
	})

	t.Run("Operation Runs On Bound Channel", func(t *testing.T) {
		membership := testMembership(principalID)
		binder := &stubBinder{}
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
			binder,
			logger,
			nil,
		)

		var seenTenant uuid.UUID
		var seenMembership *domain.Membership
		err := s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			seenTenant = ch.TenantID()
			seenMembership = MembershipFromContext(ctx)
			return nil
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if seenTenant != membership.TenantID {
			t.Errorf("channel bound to %v, want %v", seenTenant, membership.TenantID)
		}
		if seenMembership == nil || seenMembership.ID != membership.ID {
			t.Error("membership not attached to the operation context")
		}
		if len(binder.channels) != 1 {
			t.Fatalf("expected 1 bound channel, got %d", len(binder.channels))
		}
		if !binder.channels[0].released {
			t.Error("channel was not released after the operation")
		}
		if binder.channels[0].releasedWith != nil {
			t.Errorf("release should carry a nil operation error, got %v", binder.channels[0].releasedWith)
		}
	})

	t.Run("Operation Error Propagates And Rolls Back", func(t *testing.T) {
		membership := testMembership(principalID)
		binder := &stubBinder{}
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
			binder,
			logger,
			nil,
		)

		opErr := errors.New("query blew up")
		err := s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			return opErr
		})

		if !errors.Is(err, opErr) {
			t.Fatalf("expected operation error to propagate unchanged, got %v", err)
		}
		if got := binder.channels[0].releasedWith; !errors.Is(got, opErr) {
			t.Errorf("release should observe the operation error, got %v", got)
		}
	})

	t.Run("Fresh Channel Per Invocation", func(t *testing.T) {
		membership := testMembership(principalID)
		binder := &stubBinder{}
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
			binder,
			logger,
			nil,
		)

		var first, second Channel
		_ = s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			first = ch
			return nil
		})
		_ = s.WithTenantScope(context.Background(), func(ctx context.Context, ch Channel) error {
			second = ch
			return nil
		})

		if first == second {
			t.Error("channels must not be reused across operations")
		}
		if len(binder.channels) != 2 {
			t.Errorf("expected 2 bound channels, got %d", len(binder.channels))
		}
	})
}

func TestWithTenantScope_Generic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	principalID := uuid.New()
	membership := testMembership(principalID)
	s := NewScoper(
		&stubResolver{principal: &domain.Principal{ID: principalID}},
		&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
		&stubBinder{},
		logger,
		nil,
	)

	got, err := WithTenantScope(context.Background(), s, func(ctx context.Context, ch Channel) (string, error) {
		return "result", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "result" {
		t.Errorf("expected result passthrough, got %q", got)
	}

	wantErr := errors.New("nope")
	_, err = WithTenantScope(context.Background(), s, func(ctx context.Context, ch Channel) (string, error) {
		return "ignored", wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}

func TestScoper_Membership(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	principalID := uuid.New()

	t.Run("Unauthenticated", func(t *testing.T) {
		s := NewScoper(&stubResolver{}, &stubDirectory{}, &stubBinder{}, logger, nil)
		_, err := s.Membership(context.Background())
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("Not Onboarded", func(t *testing.T) {
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{},
			&stubBinder{},
			logger,
			nil,
		)
		_, err := s.Membership(context.Background())
		if !errors.Is(err, domain.ErrNoTenant) {
			t.Fatalf("expected ErrNoTenant, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		membership := testMembership(principalID)
		s := NewScoper(
			&stubResolver{principal: &domain.Principal{ID: principalID}},
			&stubDirectory{memberships: map[uuid.UUID]*domain.Membership{principalID: membership}},
			&stubBinder{},
			logger,
			nil,
		)
		got, err := s.Membership(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.TenantID != membership.TenantID {
			t.Errorf("wrong membership returned")
		}
	})
}
