package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
)

type documentService struct {
	scoper    *tenancy.Scoper
	documents DocumentRepository
	matters   MatterRepository
}

func NewDocumentService(scoper *tenancy.Scoper, documents DocumentRepository, matters MatterRepository) DocumentUseCase {
	return &documentService{
		scoper:    scoper,
		documents: documents,
		matters:   matters,
	}
}

func (s *documentService) List(ctx context.Context, matterID *uuid.UUID) ([]domain.Document, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) ([]domain.Document, error) {
		return s.documents.List(ctx, ch, matterID)
	})
}

func (s *documentService) Create(ctx context.Context, input CreateDocumentInput) (*domain.Document, error) {
	return tenancy.WithTenantScope(ctx, s.scoper, func(ctx context.Context, ch tenancy.Channel) (*domain.Document, error) {
		// The matter lookup runs on the same scoped channel, so a matter id
		// belonging to another tenant is simply not found.
		if _, err := s.matters.FindByID(ctx, ch, input.MatterID); err != nil {
			return nil, err
		}

		membership := tenancy.MembershipFromContext(ctx)
		now := time.Now().UTC()
		doc := &domain.Document{
			ID:          uuid.New(),
			MatterID:    input.MatterID,
			Title:       input.Title,
			FileName:    input.FileName,
			FilePath:    input.FilePath,
			FileSize:    input.FileSize,
			FileType:    input.FileType,
			Description: input.Description,
			Status:      domain.DocumentUploaded,
			UploadedBy:  membership.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.documents.Store(ctx, ch, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
}
