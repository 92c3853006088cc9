package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

// MockMatterRepository is a mock implementation of usecase.MatterRepository.
// It records the channel each call received so tests can assert the tenant
// the operation was scoped to.
type MockMatterRepository struct {
	mu sync.Mutex

	Matters  []domain.Matter
	Stored   []*domain.Matter
	Channels []tenancy.Channel

	ListErr   error
	FindErr   error
	StoreErr  error
	UpdateErr error
	DeleteErr error
}

func (m *MockMatterRepository) record(ch tenancy.Channel) {
	m.Channels = append(m.Channels, ch)
}

func (m *MockMatterRepository) List(ctx context.Context, ch tenancy.Channel) ([]domain.Matter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(ch)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Matters, nil
}

func (m *MockMatterRepository) FindByID(ctx context.Context, ch tenancy.Channel, id uuid.UUID) (*domain.Matter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(ch)
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for i := range m.Matters {
		if m.Matters[i].ID == id {
			return &m.Matters[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockMatterRepository) Store(ctx context.Context, ch tenancy.Channel, matter *domain.Matter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(ch)
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, matter)
	m.Matters = append(m.Matters, *matter)
	return nil
}

func (m *MockMatterRepository) Update(ctx context.Context, ch tenancy.Channel, id uuid.UUID, upd domain.MatterUpdate) (*domain.Matter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(ch)
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for i := range m.Matters {
		if m.Matters[i].ID == id {
			if upd.Title != nil {
				m.Matters[i].Title = *upd.Title
			}
			if upd.Status != nil {
				m.Matters[i].Status = *upd.Status
			}
			return &m.Matters[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockMatterRepository) Delete(ctx context.Context, ch tenancy.Channel, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(ch)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Matters {
		if m.Matters[i].ID == id {
			m.Matters = append(m.Matters[:i], m.Matters[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockDocumentRepository is a mock implementation of usecase.DocumentRepository.
type MockDocumentRepository struct {
	mu sync.Mutex

	Documents []domain.Document
	Stored    []*domain.Document
	Channels  []tenancy.Channel

	ListErr  error
	StoreErr error
}

func (m *MockDocumentRepository) List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Channels = append(m.Channels, ch)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if matterID == nil {
		return m.Documents, nil
	}
	var docs []domain.Document
	for _, d := range m.Documents {
		if d.MatterID == *matterID {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

func (m *MockDocumentRepository) ListByMatter(ctx context.Context, ch tenancy.Channel, matterID uuid.UUID) ([]domain.Document, error) {
	return m.List(ctx, ch, &matterID)
}

func (m *MockDocumentRepository) Store(ctx context.Context, ch tenancy.Channel, d *domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Channels = append(m.Channels, ch)
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, d)
	m.Documents = append(m.Documents, *d)
	return nil
}

// MockTaskRepository is a mock implementation of usecase.TaskRepository.
type MockTaskRepository struct {
	mu sync.Mutex

	Tasks    []domain.Task
	Stored   []*domain.Task
	Channels []tenancy.Channel

	ListErr  error
	StoreErr error
}

func (m *MockTaskRepository) List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Channels = append(m.Channels, ch)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if matterID == nil {
		return m.Tasks, nil
	}
	var tasks []domain.Task
	for _, t := range m.Tasks {
		if t.MatterID == *matterID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (m *MockTaskRepository) Store(ctx context.Context, ch tenancy.Channel, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Channels = append(m.Channels, ch)
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, t)
	m.Tasks = append(m.Tasks, *t)
	return nil
}
