package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type matterService struct {
	scoper    *tenancy.Scoper
	matters   MatterRepository
	documents DocumentRepository
}

func NewMatterService(scoper *tenancy.Scoper, matters MatterRepository, documents DocumentRepository) MatterUseCase {
	return &matterService{
		scoper:    scoper,
		matters:   matters,
		documents: documents,
	}
}

func (s *matterService) List(ctx context.Context) ([]domain.Matter, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) ([]domain.Matter, error) {
		return s.matters.List(ctx, ch)
	})
}

func (s *matterService) Get(ctx context.Context, id uuid.UUID) (*MatterDetail, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) (*MatterDetail, error) {
		matter, err := s.matters.FindByID(ctx, ch, id)
		if err != nil {
			return nil, err
		}
		docs, err := s.documents.ListByMatter(ctx, ch, id)
		if err != nil {
			return nil, err
		}
		return &MatterDetail{Matter: *matter, Documents: docs}, nil
	})
}

func (s *matterService) Create(ctx context.Context, input CreateMatterInput) (*domain.Matter, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) (*domain.Matter, error) {
		status := input.Status
		if status == "" {
			status = domain.MatterActive
		}

		now := time.Now().UTC()
		matter := &domain.Matter{
			ID:          uuid.New(),
			Title:       input.Title,
			Description: input.Description,
			ClientName:  input.ClientName,
			ClientEmail: input.ClientEmail,
			ClientPhone: input.ClientPhone,
			Status:      status,
			MatterType:  input.MatterType,
			AssignedTo:  input.AssignedTo,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.matters.Store(ctx, ch, matter); err != nil {
			return nil, err
		}
		return matter, nil
	})
}

func (s *matterService) Update(ctx context.Context, id uuid.UUID, upd domain.MatterUpdate) (*domain.Matter, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) (*domain.Matter, error) {
		return s.matters.Update(ctx, ch, id, upd)
	})
}

func (s *matterService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scoper.WithTenantScope(ctx, func(ctx context.Context, ch tenancy.Channel) error {
		return s.matters.Delete(ctx, ch, id)
	})
}
