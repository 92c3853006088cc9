package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

// MockResolver is a mock implementation of tenancy.SessionResolver.
type MockResolver struct {
	Principal *domain.Principal
	Err       error
}

func (m *MockResolver) Resolve(ctx context.Context) (*domain.Principal, error) {
	return m.Principal, m.Err
}

// MockDirectory is a mock implementation of tenancy.Directory for testing.
type MockDirectory struct {
	mu sync.Mutex

	Memberships map[uuid.UUID]*domain.Membership
	Tenants     map[string]*domain.Tenant
	Members     []domain.MemberSummary

	LookupErr  error
	ListErr    error
	CreateErr  error
	CreateFunc func(principal domain.Principal, name, slug string) (*domain.Membership, error)

	LookupCalls int
	ListCalls   int
	CreateCalls int
}

func (m *MockDirectory) LookupMembership(ctx context.Context, principalID uuid.UUID) (*domain.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LookupCalls++
	if m.LookupErr != nil {
		return nil, m.LookupErr
	}
	return m.Memberships[principalID], nil
}

func (m *MockDirectory) LookupTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Tenants[slug], nil
}

func (m *MockDirectory) ListMembers(ctx context.Context, tenantID uuid.UUID) ([]domain.MemberSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Members, nil
}

func (m *MockDirectory) CreateTenantAndOwner(ctx context.Context, principal domain.Principal, name, slug string) (*domain.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if existing, ok := m.Memberships[principal.ID]; ok {
		return existing, nil
	}
	if m.CreateFunc != nil {
		return m.CreateFunc(principal, name, slug)
	}
	tenant := domain.Tenant{
		ID:                 uuid.New(),
		Name:               name,
		Slug:               slug,
		SubscriptionStatus: domain.SubscriptionTrial,
		SubscriptionPlan:   domain.PlanStarter,
	}
	membership := &domain.Membership{
		ID:       principal.ID,
		TenantID: tenant.ID,
		Role:     domain.RoleOwner,
		Email:    principal.Email,
		Tenant:   tenant,
	}
	if m.Memberships == nil {
		m.Memberships = make(map[uuid.UUID]*domain.Membership)
	}
	m.Memberships[principal.ID] = membership
	return membership, nil
}

// MockChannel is a mock implementation of tenancy.BoundChannel. Its query
// methods are stubs; repository mocks record calls instead of issuing SQL.
type MockChannel struct {
	Tenant uuid.UUID

	Released     bool
	ReleaseCtx   context.Context
	ReleasedWith error
	ReleaseErr   error
}

func (c *MockChannel) TenantID() uuid.UUID { return c.Tenant }

func (c *MockChannel) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}

func (c *MockChannel) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (c *MockChannel) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func (c *MockChannel) Release(ctx context.Context, opErr error) error {
	c.Released = true
	c.ReleaseCtx = ctx
	c.ReleasedWith = opErr
	return c.ReleaseErr
}

// MockBinder is a mock implementation of tenancy.Binder. Each Bind hands
// out a fresh channel, mirroring the per-operation contract.
type MockBinder struct {
	mu       sync.Mutex
	BindErr  error
	Channels []*MockChannel
}

func (b *MockBinder) Bind(ctx context.Context, tenantID uuid.UUID) (tenancy.BoundChannel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.BindErr != nil {
		return nil, b.BindErr
	}
	ch := &MockChannel{Tenant: tenantID}
	b.Channels = append(b.Channels, ch)
	return ch, nil
}

// MockAccountRepository is a mock implementation of domain.AccountRepository.
type MockAccountRepository struct {
	mu       sync.Mutex
	Accounts map[string]*domain.Account
	StoreErr error
	Stored   []*domain.Account
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.Accounts[email]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockAccountRepository) Store(ctx context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	if m.Accounts == nil {
		m.Accounts = make(map[string]*domain.Account)
	}
	m.Accounts[a.Email] = a
	m.Stored = append(m.Stored, a)
	return nil
}
