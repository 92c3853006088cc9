package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

// AuthUseCase defines the contract for authentication services.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password, fullName string) (string, error)
}

// OnboardingUseCase defines the contract for first-login tenant creation.
type OnboardingUseCase interface {
	Onboard(ctx context.Context, desiredName, desiredSlug string) (*domain.Membership, error)
}

// MemberUseCase defines the contract for tenant membership queries.
type MemberUseCase interface {
	Current(ctx context.Context) (*domain.Membership, error)
	List(ctx context.Context) ([]domain.MemberSummary, error)
}

// MatterUseCase defines the contract for managing matters.
type MatterUseCase interface {
	List(ctx context.Context) ([]domain.Matter, error)
	Get(ctx context.Context, id uuid.UUID) (*MatterDetail, error)
	Create(ctx context.Context, input CreateMatterInput) (*domain.Matter, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.MatterUpdate) (*domain.Matter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentUseCase defines the contract for managing document metadata.
type DocumentUseCase interface {
	List(ctx context.Context, matterID *uuid.UUID) ([]domain.Document, error)
	Create(ctx context.Context, input CreateDocumentInput) (*domain.Document, error)
}

// TaskUseCase defines the contract for managing legal tasks.
type TaskUseCase interface {
	List(ctx context.Context, matterID *uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
}

// MatterRepository is the persistence contract for matters. Every method
// takes a tenant-scoped channel; no repository accepts a raw handle.
type MatterRepository interface {
	List(ctx context.Context, ch tenancy.Channel) ([]domain.Matter, error)
	FindByID(ctx context.Context, ch tenancy.Channel, id uuid.UUID) (*domain.Matter, error)
	Store(ctx context.Context, ch tenancy.Channel, m *domain.Matter) error
	Update(ctx context.Context, ch tenancy.Channel, id uuid.UUID, upd domain.MatterUpdate) (*domain.Matter, error)
	Delete(ctx context.Context, ch tenancy.Channel, id uuid.UUID) error
}

// DocumentRepository is the persistence contract for document metadata.
type DocumentRepository interface {
	List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Document, error)
	ListByMatter(ctx context.Context, ch tenancy.Channel, matterID uuid.UUID) ([]domain.Document, error)
	Store(ctx context.Context, ch tenancy.Channel, d *domain.Document) error
}

// TaskRepository is the persistence contract for tasks.
type TaskRepository interface {
	List(ctx context.Context, ch tenancy.Channel, matterID *uuid.UUID) ([]domain.Task, error)
	Store(ctx context.Context, ch tenancy.Channel, t *domain.Task) error
}

// MatterDetail is a matter together with its documents.
type MatterDetail struct {
	domain.Matter
	Documents []domain.Document `json:"documents"`
}

// CreateMatterInput carries the fields accepted when opening a matter.
type CreateMatterInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email,omitempty"`
	ClientPhone string              `json:"client_phone,omitempty"`
	Status      domain.MatterStatus `json:"status,omitempty"`
	MatterType  string              `json:"matter_type,omitempty"`
	AssignedTo  *uuid.UUID          `json:"assigned_to,omitempty"`
}

// CreateDocumentInput carries the fields accepted when registering a
// document upload.
type CreateDocumentInput struct {
	MatterID    uuid.UUID `json:"matter_id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	Description string    `json:"description,omitempty"`
}

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	MatterID    uuid.UUID `json:"matter_id"`
	TaskType    string    `json:"task_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}
